// Package validation rejects malformed or conflicting input before it
// reaches the store. Payload types use pointer fields where "absent" must be
// distinguishable from a zero value at the transport boundary.
package validation

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"gym-routines-api/internal/database"
)

// MaxNameLength is the maximum length of routine and exercise names
const MaxNameLength = 100

const (
	msgNameEmpty    = "must not be empty"
	msgNameTooLong  = "must be 100 characters or fewer"
	msgPositive     = "must be greater than 0"
	msgNonNegative  = "must not be negative"
	msgBadWeekday   = "must be one of Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday"
)

// Errors maps a field name to the reason it was rejected
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed on: %s", strings.Join(fields, ", "))
}

// RoutineInput is the payload for creating a routine
type RoutineInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Validate trims the name in place and returns nil if the input is valid
func (in *RoutineInput) Validate() Errors {
	errs := Errors{}
	in.Name = strings.TrimSpace(in.Name)
	checkName(errs, "name", in.Name)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// RoutinePatch is the payload for a partial routine update.
// Omitted fields leave the stored values unchanged.
type RoutinePatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Validate trims a supplied name in place and returns nil if the patch is valid
func (p *RoutinePatch) Validate() Errors {
	errs := Errors{}
	if p.Name != nil {
		*p.Name = strings.TrimSpace(*p.Name)
		checkName(errs, "name", *p.Name)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ExerciseInput is the payload for creating an exercise. Sets and reps must be
// supplied and positive; a missing numeric field decodes to zero and is
// rejected by the same rule.
type ExerciseInput struct {
	Name    string           `json:"name"`
	Weekday database.Weekday `json:"weekday"`
	Sets    int              `json:"sets"`
	Reps    int              `json:"reps"`
	Weight  *int             `json:"weight"`
	Notes   *string          `json:"notes"`
	Order   int              `json:"order"`
}

// Validate trims the name in place and returns nil if the input is valid
func (in *ExerciseInput) Validate() Errors {
	errs := Errors{}
	in.Name = strings.TrimSpace(in.Name)
	checkName(errs, "name", in.Name)
	if !in.Weekday.Valid() {
		errs["weekday"] = msgBadWeekday
	}
	if in.Sets <= 0 {
		errs["sets"] = msgPositive
	}
	if in.Reps <= 0 {
		errs["reps"] = msgPositive
	}
	if in.Weight != nil && *in.Weight < 0 {
		errs["weight"] = msgNonNegative
	}
	if in.Order < 0 {
		errs["order"] = msgNonNegative
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ExercisePatch is the payload for a partial exercise update.
// Omitted fields leave the stored values unchanged.
type ExercisePatch struct {
	Name    *string           `json:"name"`
	Weekday *database.Weekday `json:"weekday"`
	Sets    *int              `json:"sets"`
	Reps    *int              `json:"reps"`
	Weight  *int              `json:"weight"`
	Notes   *string           `json:"notes"`
	Order   *int              `json:"order"`
}

// Validate trims a supplied name in place and returns nil if the patch is valid
func (p *ExercisePatch) Validate() Errors {
	errs := Errors{}
	if p.Name != nil {
		*p.Name = strings.TrimSpace(*p.Name)
		checkName(errs, "name", *p.Name)
	}
	if p.Weekday != nil && !p.Weekday.Valid() {
		errs["weekday"] = msgBadWeekday
	}
	if p.Sets != nil && *p.Sets <= 0 {
		errs["sets"] = msgPositive
	}
	if p.Reps != nil && *p.Reps <= 0 {
		errs["reps"] = msgPositive
	}
	if p.Weight != nil && *p.Weight < 0 {
		errs["weight"] = msgNonNegative
	}
	if p.Order != nil && *p.Order < 0 {
		errs["order"] = msgNonNegative
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// checkName validates an already-trimmed name field
func checkName(errs Errors, field, value string) {
	if value == "" {
		errs[field] = msgNameEmpty
	} else if utf8.RuneCountInString(value) > MaxNameLength {
		errs[field] = msgNameTooLong
	}
}
