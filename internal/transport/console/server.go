package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
	"github.com/rocketscienceinc/hangman/internal/hangman"
	"github.com/rocketscienceinc/hangman/internal/repository"
)

const commandPrefix = "/"

var errQuit = errors.New("quit")

type uSession interface {
	Current() *entity.Game
	NewGame() (*entity.Game, error)
	Guess(input string) (hangman.Result, error)

	Save(ctx context.Context, slot string) (string, error)
	Load(ctx context.Context, slot string) (*entity.Game, error)
	Slots(ctx context.Context) ([]repository.Slot, error)
	DeleteSlot(ctx context.Context, slot string) error
}

// Console plays the session over a line-oriented terminal.
type Console struct {
	logger  *slog.Logger
	session uSession

	in  *bufio.Scanner
	out io.Writer

	startSlot string
	commands  map[string]func(ctx context.Context, args []string) error
}

type Option func(*Console)

// WithStartSlot - loads slot before the first prompt instead of starting a fresh game.
func WithStartSlot(slot string) Option {
	return func(that *Console) {
		that.startSlot = slot
	}
}

func New(logger *slog.Logger, session uSession, in io.Reader, out io.Writer, opts ...Option) *Console {
	console := &Console{
		logger:  logger.With("component", "console"),
		session: session,

		in:  bufio.NewScanner(in),
		out: out,

		commands: make(map[string]func(context.Context, []string) error),
	}

	console.commands["save"] = console.handleSave
	console.commands["load"] = console.handleLoad
	console.commands["slots"] = console.handleSlots
	console.commands["delete"] = console.handleDelete
	console.commands["new"] = console.handleNew
	console.commands["help"] = console.handleHelp
	console.commands["quit"] = console.handleQuit

	for _, opt := range opts {
		opt(console)
	}

	return console
}

// Run - plays until the game ends, input is exhausted or the player quits.
func (that *Console) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	that.printf("Welcome to the hangman game!\n")
	that.printf("Type /help for commands.\n")

	if err := that.startGame(ctx); err != nil {
		return err
	}

	for !that.session.Current().IsFinished() {
		if err := ctx.Err(); err != nil {
			return nil
		}

		that.renderState(that.session.Current())

		line, ok := that.readLine("Please enter 1 alphabet: ")
		if !ok {
			log.Info("input closed")
			return that.in.Err()
		}

		if err := that.handleLine(ctx, line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}
	}

	that.conclude(that.session.Current())

	return nil
}

func (that *Console) startGame(ctx context.Context) error {
	if that.startSlot != "" {
		if err := that.handleLoad(ctx, []string{that.startSlot}); err != nil {
			return err
		}

		if game := that.session.Current(); game != nil && !game.IsFinished() {
			return nil
		}
	}

	if _, err := that.session.NewGame(); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	return nil
}

func (that *Console) handleLine(ctx context.Context, line string) error {
	if command, ok := strings.CutPrefix(strings.TrimSpace(line), commandPrefix); ok {
		return that.handleCommand(ctx, command)
	}

	return that.handleGuess(line)
}

func (that *Console) handleGuess(line string) error {
	result, err := that.session.Guess(line)

	switch {
	case errors.Is(err, apperror.ErrInvalidInput):
		that.printf("Please enter only one alphabet character.\n")
		return nil
	case errors.Is(err, apperror.ErrAlreadyGuessed):
		that.printf("You already guessed '%c'.\n", result.Letter)
		return nil
	case err != nil:
		return fmt.Errorf("failed to apply guess: %w", err)
	}

	switch result.Outcome {
	case hangman.OutcomeCorrect:
		that.printf("You are correct!\n")
	case hangman.OutcomeIncorrect:
		that.printf("Incorrect guess.\n")
		that.printf("%s\n", Stage(result.WrongGuesses))
	}

	return nil
}

func (that *Console) handleCommand(ctx context.Context, command string) error {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		that.printf("Unknown command. Type /help for commands.\n")
		return nil
	}

	handler, ok := that.commands[strings.ToLower(fields[0])]
	if !ok {
		that.printf("Unknown command %q. Type /help for commands.\n", fields[0])
		return nil
	}

	return handler(ctx, fields[1:])
}

func (that *Console) renderState(game *entity.Game) {
	that.printf("\nGuesses left: %d\n", game.RemainingGuesses())
	that.printf("Word: %s\n", spaced(game.RevealMask()))

	if guessed := game.GuessedLetters(); len(guessed) > 0 {
		that.printf("Guessed: %s\n", strings.Join(guessed, " "))
	}
}

func (that *Console) conclude(game *entity.Game) {
	if game.Status() == entity.StatusWon {
		that.printf("Congratulations, you won! The word was '%s'.\n", game.SecretWord())
		return
	}

	that.printf("Game over! The word was '%s'.\n", game.SecretWord())
}

func (that *Console) readLine(prompt string) (string, bool) {
	that.printf("%s", prompt)

	if !that.in.Scan() {
		return "", false
	}

	return that.in.Text(), true
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func spaced(mask string) string {
	return strings.Join(strings.Split(mask, ""), " ")
}
