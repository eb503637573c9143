// Package validator provides the field validators used by form screens:
// account fields (email, phone, username, password), generic numbers, dates
// and URLs, and match-data fields (scores, wickets, overs, team and player
// names, tournament details, uploads).
//
// Every validator has the FieldValidator shape, func(any) Result, or a
// factory that binds options and returns one. A Result never carries a Go
// error for bad input: Valid is false and Error holds the message to show.
//
// Validators are assembled from Rule values, the same building block Apply
// uses for struct-level validation. Check runs rules in order and stops at the
// first failure, which is what a single field needs; Apply runs them all and
// returns ValidationErrors, which is what a whole request needs.
//
// # Usage
//
//	res := validator.ValidatePassword(pw, validator.DefaultPasswordOptions())
//	if !res.Valid {
//	    // show res.Error next to the field
//	}
//
//	out := validator.ValidateFields(
//	    map[string]any{"username": "ab", "email": "x"},
//	    map[string]validator.FieldValidator{
//	        "username": validator.ValidateUsername,
//	        "email":    validator.ValidateEmail,
//	    },
//	)
//	// out.Valid == false, out.Errors holds both messages
//
// # Error Handling
//
// ValidationErrors implements error and matches ErrValidationFailed through
// errors.Is. FieldsResult.Err and Result.Err convert results into it.
//
// The package is stateless and safe for concurrent use.
package validator
