package config

import (
	"bytes"
	"errors"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	skerrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

var errEmptyDocument = errors.New("widget document is empty")

// ParseDocument reads the widget document at path and hands it to Parse.
// Read failures surface as a ParseError without a line.
func ParseDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, skerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes a widget document and validates its schema. Syntax and
// type errors are ParseErrors carrying the offending line when yaml reports
// one; schema failures are ConfigErrors. Dimension values are left for the
// resolvers. path only labels errors.
func Parse(path string, data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, skerrors.NewParseError(path, 0, errEmptyDocument)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, skerrors.NewParseError(path, errorLine(err), err)
	}

	if err := ValidateDocument(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// errorLine returns the first line number mentioned by a yaml error, or 0.
// A TypeError lists one message per bad node; the first one wins.
func errorLine(err error) int {
	msg := err.Error()
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
		msg = typeErr.Errors[0]
	}

	matches := yamlLineRegex.FindStringSubmatch(msg)
	if len(matches) != 2 {
		return 0
	}
	line, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0
	}
	return line
}
