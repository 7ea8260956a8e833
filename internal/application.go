package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/hangman/internal/config"
	"github.com/rocketscienceinc/hangman/internal/dictionary"
	"github.com/rocketscienceinc/hangman/internal/repository"
	"github.com/rocketscienceinc/hangman/internal/repository/storage"
	"github.com/rocketscienceinc/hangman/internal/snapshot"
	"github.com/rocketscienceinc/hangman/internal/transport/console"
	"github.com/rocketscienceinc/hangman/internal/usecase"
)

var (
	ErrAddrNotFound  = errors.New("redis address string is empty")
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	words, err := dictionary.Load(conf.DictionaryPath)
	if err != nil {
		return fmt.Errorf("could not load dictionary: %w", err)
	}

	log.Info("Dictionary loaded", "path", conf.DictionaryPath, "words", len(words))

	src, err := dictionary.NewSeededSource()
	if err != nil {
		return fmt.Errorf("could not seed word picker: %w", err)
	}

	picker, err := dictionary.NewPicker(words, src)
	if err != nil {
		return fmt.Errorf("could not create word picker: %w", err)
	}

	codec, err := snapshot.CodecByName(conf.Snapshot.Format)
	if err != nil {
		return fmt.Errorf("could not select snapshot codec: %w", err)
	}

	saves, closeSaves, err := openSaveRepository(ctx, conf.Storage)
	if err != nil {
		return fmt.Errorf("could not open save storage: %w", err)
	}

	defer func() {
		if err = closeSaves(); err != nil {
			log.Error("could not close save storage", "error", err)
		}
	}()

	log.Info("Save storage ready", "driver", conf.Storage.Driver, "format", codec.Name())

	session := usecase.NewSession(logger, picker, snapshot.NewSerializer(codec), saves)
	cli := console.New(logger, session, in, out, console.WithStartSlot(conf.Slot))

	// run the game loop; a blocked terminal read must not hold up a signal
	gameErrCh := make(chan error, 1)
	go func() {
		gameErrCh <- cli.Run(ctx)
	}()

	select {
	case err = <-gameErrCh:
		if err != nil {
			return fmt.Errorf("game error: %w", err)
		}
		log.Info("Game loop finished")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func openSaveRepository(ctx context.Context, conf config.Storage) (repository.SaveRepository, func() error, error) {
	switch conf.Driver {
	case config.DriverFile:
		saves, err := repository.NewFileSaveRepository(conf.SaveDir)
		if err != nil {
			return nil, nil, err
		}

		return saves, func() error { return nil }, nil

	case config.DriverRedis:
		if conf.Redis.Host == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr(), conf.Redis.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisSaveRepository(redisStorage.Client), redisStorage.Close, nil

	case config.DriverSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLiteSaveRepository(sqliteStorage.Connection), sqliteStorage.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDriver, conf.Driver)
	}
}
