package main

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// buildValidator maps a field's rule name and options to a validator.
func buildValidator(spec FieldSpec) (validator.FieldValidator, error) {
	switch spec.Rule {
	case "email":
		return validator.ValidateEmail, nil
	case "phone":
		return validator.ValidatePhone, nil
	case "username":
		return validator.ValidateUsername, nil
	case "password":
		return validator.Password(validator.DefaultPasswordOptions()), nil
	case "required":
		label := spec.Label
		if label == "" {
			label = spec.Name
		}
		return validator.Required(label), nil
	case "number":
		var opts []validator.NumberOption
		if spec.Min != nil {
			opts = append(opts, validator.NumberMin(*spec.Min))
		}
		if spec.Max != nil {
			opts = append(opts, validator.NumberMax(*spec.Max))
		}
		if spec.Integer {
			opts = append(opts, validator.NumberInteger())
		}
		return validator.Number(opts...), nil
	case "url":
		return validator.ValidateURL, nil
	case "score":
		sport := validator.Sport(spec.Sport)
		if _, ok := sport.MaxScore(); !ok {
			return nil, fmt.Errorf("field %q: score rule needs sport cricket or football", spec.Name)
		}
		return validator.Score(sport), nil
	case "wickets":
		return validator.ValidateWickets, nil
	case "overs":
		return validator.Overs(spec.MaxOvers), nil
	case "team_name":
		return validator.ValidateTeamName, nil
	case "player_name":
		return validator.ValidatePlayerName, nil
	case "tournament_name":
		return validator.ValidateTournamentName, nil
	case "description":
		return validator.Description(spec.MaxLength), nil
	case "match_date":
		return validator.ValidateMatchDate, nil
	default:
		return nil, fmt.Errorf("field %q: unknown rule %q", spec.Name, spec.Rule)
	}
}

var sanitizers = map[string]sanitizer.Func{
	"trim":     sanitizer.Trim,
	"lower":    sanitizer.ToLower,
	"squash":   sanitizer.NormalizeWhitespace,
	"text":     sanitizer.SanitizeText,
	"html":     sanitizer.SanitizeHTML,
	"email":    sanitizer.SanitizeEmail,
	"username": sanitizer.SanitizeUsername,
	"phone":    sanitizer.SanitizePhone,
	"url":      sanitizer.SanitizeURL,
	"filename": sanitizer.SanitizeFileName,
	"search":   sanitizer.SanitizeSearchQuery,
	"number":   sanitizer.Number(sanitizer.NumberConfig{AllowNegative: true, AllowDecimal: true}),
	"integer":  sanitizer.Integer(sanitizer.NumberConfig{AllowNegative: true}),
}

// sanitizerNames splits a "trim,email" list, dropping blanks.
func sanitizerNames(list string) []string {
	var names []string
	for name := range strings.SplitSeq(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// compile turns a document into the inputs of a form submit.
func compile(doc Document) (map[string]any, map[string]validator.FieldValidator, map[string]sanitizer.Func, error) {
	fields := make(map[string]any, len(doc.Fields))
	validators := make(map[string]validator.FieldValidator, len(doc.Fields))
	cleaners := make(map[string]sanitizer.Func)

	for _, spec := range doc.Fields {
		v, err := buildValidator(spec)
		if err != nil {
			return nil, nil, nil, err
		}
		fields[spec.Name] = spec.Value
		validators[spec.Name] = v
		if names := sanitizerNames(spec.Sanitize); len(names) > 0 {
			chain := make([]sanitizer.Func, 0, len(names))
			for _, name := range names {
				clean, ok := sanitizers[name]
				if !ok {
					return nil, nil, nil, fmt.Errorf("field %q: unknown sanitizer %q", spec.Name, name)
				}
				chain = append(chain, clean)
			}
			cleaners[spec.Name] = sanitizer.Chain(chain...)
		}
	}
	return fields, validators, cleaners, nil
}
