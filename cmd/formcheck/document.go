package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Document is a form to check: an optional id and the fields to validate.
type Document struct {
	ID     string      `yaml:"id" validate:"omitempty,max=128"`
	Fields []FieldSpec `yaml:"fields" validate:"required,min=1,unique=Name,dive"`
}

// FieldSpec names a field, its value, the rule that validates it and an
// optional comma-separated list of sanitizers applied to string values first.
type FieldSpec struct {
	Name     string `yaml:"name" validate:"required"`
	Rule     string `yaml:"rule" validate:"required,oneof=email phone username password required number url score wickets overs team_name player_name tournament_name description match_date"`
	Sanitize string `yaml:"sanitize" validate:"omitempty,sanitizers"`
	Value    any    `yaml:"value"`

	Label     string   `yaml:"label"`
	Min       *float64 `yaml:"min"`
	Max       *float64 `yaml:"max"`
	Integer   bool     `yaml:"integer"`
	Sport     string   `yaml:"sport" validate:"omitempty,oneof=cricket football"`
	MaxOvers  int      `yaml:"max_overs" validate:"gte=0"`
	MaxLength int      `yaml:"max_length" validate:"gte=0"`
}

var (
	errDocumentSyntax  = errors.New("formcheck: malformed document")
	errDocumentInvalid = errors.New("formcheck: invalid document")
)

var structValidator = newStructValidator()

// newStructValidator reports fields by their yaml names and knows the
// sanitizer names formcheck supports.
func newStructValidator() *playground.Validate {
	v := playground.New()
	_ = v.RegisterValidation("sanitizers", func(fl playground.FieldLevel) bool {
		names := sanitizerNames(fl.Field().String())
		for _, name := range names {
			if _, ok := sanitizers[name]; !ok {
				return false
			}
		}
		return len(names) > 0
	})
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

func loadDocument(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, err
	}
	defer f.Close()

	return decodeDocument(f)
}

func decodeDocument(r io.Reader) (Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return Document{}, errors.Join(errDocumentSyntax, err)
	}
	if err := structValidator.Struct(doc); err != nil {
		return Document{}, errors.Join(errDocumentInvalid, describeValidation(err))
	}
	return doc, nil
}

func describeValidation(err error) error {
	var verrs playground.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %q", fe.Namespace(), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}
