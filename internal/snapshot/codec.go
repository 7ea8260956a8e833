package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var ErrUnknownFormat = errors.New("unknown snapshot format")

// Codec turns a Document into bytes and back. Decoding must reject unknown fields.
type Codec interface {
	Name() string
	Marshal(doc Document) ([]byte, error)
	Unmarshal(data []byte, doc *Document) error
}

// CodecByName - returns the codec configured by name.
func CodecByName(name string) (Codec, error) {
	switch name {
	case FormatJSON:
		return JSONCodec{}, nil
	case FormatYAML:
		return YAMLCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

type JSONCodec struct{}

func (JSONCodec) Name() string {
	return FormatJSON
}

func (JSONCodec) Marshal(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("could not marshal snapshot: %w", err)
	}

	return data, nil
}

func (JSONCodec) Unmarshal(data []byte, doc *Document) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(doc); err != nil {
		return fmt.Errorf("could not unmarshal snapshot: %w", err)
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return errors.New("trailing data after snapshot")
	}

	return nil
}

type YAMLCodec struct{}

func (YAMLCodec) Name() string {
	return FormatYAML
}

func (YAMLCodec) Marshal(doc Document) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("could not marshal snapshot: %w", err)
	}

	return data, nil
}

// yamlFieldTags maps each snapshot key to the resolved tag its scalars must carry.
var yamlFieldTags = map[string]string{
	"secret_word":       "!!str",
	"reveal_mask":       "!!str",
	"remaining_guesses": "!!int",
	"guessed_letters":   "!!str",
}

// Unmarshal - decodes one YAML document. Scalars are checked against their resolved tag
// first, so `true` or `6.0` never reach a string or int field.
func (YAMLCodec) Unmarshal(data []byte, doc *Document) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var root yaml.Node
	if err := decoder.Decode(&root); err != nil {
		return fmt.Errorf("could not unmarshal snapshot: %w", err)
	}

	var next yaml.Node
	if err := decoder.Decode(&next); !errors.Is(err, io.EOF) {
		return errors.New("trailing data after snapshot")
	}

	if err := checkYAMLTags(&root); err != nil {
		return err
	}

	if err := root.Decode(doc); err != nil {
		return fmt.Errorf("could not unmarshal snapshot: %w", err)
	}

	return nil
}

func checkYAMLTags(root *yaml.Node) error {
	if root.Kind != yaml.DocumentNode || len(root.Content) != 1 || root.Content[0].Kind != yaml.MappingNode {
		return errors.New("snapshot is not a mapping")
	}

	fields := root.Content[0].Content
	for i := 0; i+1 < len(fields); i += 2 {
		key, value := fields[i], fields[i+1]

		tag, ok := yamlFieldTags[key.Value]
		if !ok {
			return fmt.Errorf("unknown snapshot field %q", key.Value)
		}

		if key.Value == "guessed_letters" {
			if value.Kind != yaml.SequenceNode {
				return fmt.Errorf("field %q must be a sequence", key.Value)
			}

			for _, item := range value.Content {
				if err := checkYAMLScalar(key.Value, item, tag); err != nil {
					return err
				}
			}

			continue
		}

		if err := checkYAMLScalar(key.Value, value, tag); err != nil {
			return err
		}
	}

	return nil
}

func checkYAMLScalar(field string, node *yaml.Node, tag string) error {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != tag {
		return fmt.Errorf("field %q must be %s, got %s", field, tag, node.ShortTag())
	}

	return nil
}
