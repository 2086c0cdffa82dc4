// Package validator holds the request rule sets. Each rule is a
// go-playground/validator tag evaluated against one field value, in order.
package validator

import (
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "movie-api/internal/errors"
	"movie-api/internal/models"
)

// Rule checks one field with one validator tag.
type Rule[T any] struct {
	Field   string
	Tag     string
	Message string
	// Value extracts the field value; present=false skips the rule.
	Value func(T) (value any, present bool)
}

var (
	engine     *validator.Validate
	engineOnce sync.Once
)

// validateNotBlank rejects strings that are empty after trimming whitespace
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateMaxBytes limits the UTF-8 encoded length of a string; the builtin max counts runes
func validateMaxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// validateNotObjectID rejects strings that parse as a MongoDB ObjectID.
// User routes accept either an id or a username, so the two must never overlap.
func validateNotObjectID(fl validator.FieldLevel) bool {
	_, err := primitive.ObjectIDFromHex(fl.Field().String())
	return err != nil
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	_ = Engine()
}

// Engine returns gin's validator engine with custom validators registered.
func Engine() *validator.Validate {
	engineOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			v = validator.New(validator.WithRequiredStructEnabled())
		}
		_ = v.RegisterValidation("notblank", validateNotBlank)
		_ = v.RegisterValidation("maxbytes", validateMaxBytes)
		_ = v.RegisterValidation("notobjectid", validateNotObjectID)
		engine = v
	})
	return engine
}

// Apply evaluates rules against input. Only the first failing rule of each
// field is reported. Returns *apperrors.ValidationError or nil.
func Apply[T any](input T, rules []Rule[T]) error {
	v := Engine()
	var fields []apperrors.FieldError
	failed := make(map[string]bool)

	for _, r := range rules {
		if failed[r.Field] {
			continue
		}
		value, present := r.Value(input)
		if !present {
			continue
		}
		if err := v.Var(value, r.Tag); err != nil {
			failed[r.Field] = true
			fields = append(fields, apperrors.FieldError{Field: r.Field, Message: r.Message})
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return &apperrors.ValidationError{Fields: fields}
}

func always[T any](get func(T) string) func(T) (any, bool) {
	return func(in T) (any, bool) { return get(in), true }
}

func ifSet[T any](get func(T) *string) func(T) (any, bool) {
	return func(in T) (any, bool) {
		p := get(in)
		if p == nil {
			return nil, false
		}
		return *p, true
	}
}

func ifNotEmpty[T any](get func(T) string) func(T) (any, bool) {
	return func(in T) (any, bool) {
		s := get(in)
		return s, s != ""
	}
}

const (
	msgRequired      = "is required"
	msgUsernameMin   = "must be at least 5 characters"
	msgUsernameChars = "must contain only letters and digits"
	msgPasswordMin   = "must be at least 8 characters"
	msgUsernameID    = "must not look like a user id"
	msgPasswordMax   = "must be at most 72 bytes"
	msgEmail         = "must be a valid email address"
	msgBirthday      = "must be a valid date in YYYY-MM-DD format"
	msgNotBlank      = "must not be empty"
)

// CreateUserRules validates a registration payload.
var CreateUserRules = []Rule[models.CreateUserRequest]{
	{Field: "username", Tag: "required", Message: msgRequired, Value: always(func(r models.CreateUserRequest) string { return r.Username })},
	{Field: "username", Tag: "min=5", Message: msgUsernameMin, Value: always(func(r models.CreateUserRequest) string { return r.Username })},
	{Field: "username", Tag: "alphanum", Message: msgUsernameChars, Value: always(func(r models.CreateUserRequest) string { return r.Username })},
	{Field: "username", Tag: "notobjectid", Message: msgUsernameID, Value: always(func(r models.CreateUserRequest) string { return r.Username })},
	{Field: "password", Tag: "required", Message: msgRequired, Value: always(func(r models.CreateUserRequest) string { return r.Password })},
	{Field: "password", Tag: "min=8", Message: msgPasswordMin, Value: always(func(r models.CreateUserRequest) string { return r.Password })},
	{Field: "password", Tag: "maxbytes=72", Message: msgPasswordMax, Value: always(func(r models.CreateUserRequest) string { return r.Password })},
	{Field: "email", Tag: "required", Message: msgRequired, Value: always(func(r models.CreateUserRequest) string { return r.Email })},
	{Field: "email", Tag: "email", Message: msgEmail, Value: always(func(r models.CreateUserRequest) string { return r.Email })},
	{Field: "birthday", Tag: "datetime=2006-01-02", Message: msgBirthday, Value: ifNotEmpty(func(r models.CreateUserRequest) string { return r.Birthday })},
}

// UpdateUserRules validates the fields present in a user patch.
var UpdateUserRules = []Rule[models.UpdateUserRequest]{
	{Field: "username", Tag: "required", Message: msgRequired, Value: ifSet(func(r models.UpdateUserRequest) *string { return r.Username })},
	{Field: "username", Tag: "min=5", Message: msgUsernameMin, Value: ifSet(func(r models.UpdateUserRequest) *string { return r.Username })},
	{Field: "username", Tag: "alphanum", Message: msgUsernameChars, Value: ifSet(func(r models.UpdateUserRequest) *string { return r.Username })},
	{Field: "username", Tag: "notobjectid", Message: msgUsernameID, Value: ifSet(func(r models.UpdateUserRequest) *string { return r.Username })},
	{Field: "password", Tag: "required", Message: msgRequired, Value: ifSet(func(r models.UpdateUserRequest) *string { return r.Password })},
	{Field: "password", Tag: "min=8", Message: msgPasswordMin, Value: ifSet(func(r models.UpdateUserRequest) *string { return r.Password })},
	{Field: "password", Tag: "maxbytes=72", Message: msgPasswordMax, Value: ifSet(func(r models.UpdateUserRequest) *string { return r.Password })},
	{Field: "email", Tag: "required", Message: msgRequired, Value: ifSet(func(r models.UpdateUserRequest) *string { return r.Email })},
	{Field: "email", Tag: "email", Message: msgEmail, Value: ifSet(func(r models.UpdateUserRequest) *string { return r.Email })},
	{Field: "birthday", Tag: "datetime=2006-01-02", Message: msgBirthday, Value: ifSet(func(r models.UpdateUserRequest) *string { return r.Birthday })},
}

// LoginRules validates a login payload.
var LoginRules = []Rule[models.LoginRequest]{
	{Field: "username", Tag: "required", Message: msgRequired, Value: always(func(r models.LoginRequest) string { return r.Username })},
	{Field: "password", Tag: "required", Message: msgRequired, Value: always(func(r models.LoginRequest) string { return r.Password })},
}

// CreateMovieRules validates a new movie.
var CreateMovieRules = []Rule[models.CreateMovieRequest]{
	{Field: "title", Tag: "notblank", Message: msgRequired, Value: always(func(r models.CreateMovieRequest) string { return r.Title })},
	{Field: "description", Tag: "notblank", Message: msgRequired, Value: always(func(r models.CreateMovieRequest) string { return r.Description })},
	{Field: "genre.name", Tag: "notblank", Message: msgRequired, Value: always(func(r models.CreateMovieRequest) string { return r.Genre.Name })},
	{Field: "genre.description", Tag: "notblank", Message: msgRequired, Value: always(func(r models.CreateMovieRequest) string { return r.Genre.Description })},
	{Field: "director.name", Tag: "notblank", Message: msgRequired, Value: always(func(r models.CreateMovieRequest) string { return r.Director.Name })},
}

// UpdateMovieRules validates the fields present in a movie patch.
var UpdateMovieRules = []Rule[models.UpdateMovieRequest]{
	{Field: "title", Tag: "notblank", Message: msgNotBlank, Value: ifSet(func(r models.UpdateMovieRequest) *string { return r.Title })},
	{Field: "description", Tag: "notblank", Message: msgNotBlank, Value: ifSet(func(r models.UpdateMovieRequest) *string { return r.Description })},
	{Field: "genre.name", Tag: "notblank", Message: msgNotBlank, Value: ifSet(func(r models.UpdateMovieRequest) *string {
		if r.Genre == nil {
			return nil
		}
		return &r.Genre.Name
	})},
	{Field: "genre.description", Tag: "notblank", Message: msgNotBlank, Value: ifSet(func(r models.UpdateMovieRequest) *string {
		if r.Genre == nil {
			return nil
		}
		return &r.Genre.Description
	})},
	{Field: "director.name", Tag: "notblank", Message: msgNotBlank, Value: ifSet(func(r models.UpdateMovieRequest) *string {
		if r.Director == nil {
			return nil
		}
		return &r.Director.Name
	})},
}

// CreateUser validates a registration payload.
func CreateUser(req models.CreateUserRequest) error { return Apply(req, CreateUserRules) }

// UpdateUser validates a user patch.
func UpdateUser(req models.UpdateUserRequest) error { return Apply(req, UpdateUserRules) }

// Login validates a login payload.
func Login(req models.LoginRequest) error { return Apply(req, LoginRules) }

// CreateMovie validates a new movie.
func CreateMovie(req models.CreateMovieRequest) error { return Apply(req, CreateMovieRules) }

// UpdateMovie validates a movie patch.
func UpdateMovie(req models.UpdateMovieRequest) error { return Apply(req, UpdateMovieRules) }
