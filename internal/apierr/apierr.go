package apierr

import (
	"fmt"
	"net/http"
	"strings"
)

// Code identifies a domain error. The set is closed: every failure an
// endpoint can report is one of these, bound to an HTTP status and a
// message template.
type Code string

const (
	// General
	InternalServerError Code = "INTERNAL_SERVER_ERROR"
	ValidationError     Code = "VALIDATION_ERROR"
	Unauthorized        Code = "UNAUTHORIZED"

	// User
	UserNotFound           Code = "USER_NOT_FOUND"
	UserAlreadyExists      Code = "USER_ALREADY_EXISTS"
	UserNameAlreadyExists  Code = "USER_NAME_ALREADY_EXISTS"
	UserEmailAlreadyExists Code = "USER_EMAIL_ALREADY_EXISTS"
	EmailOrPasswordWrong   Code = "EMAIL_OR_PASSWORD_INCORRECT"

	// Movie
	MovieNotFound           Code = "MOVIE_NOT_FOUND"
	MovieTitleAlreadyExists Code = "MOVIE_TITLE_ALREADY_EXISTS"
	ErrorCreatingMovie      Code = "ERROR_CREATING_MOVIE"
	MovieAlreadyRented      Code = "MOVIE_ALREADY_RENTED"

	// Review
	ReviewNotRentedMovie   Code = "TRY_REVIEW_NOT_RENTED_MOVIE"
	ReviewAlreadyRated     Code = "TRY_REVIEW_ALREADY_RATED_MOVIE"
)

type definition struct {
	status  int
	message string
}

// Message templates may carry {key} placeholders filled from the error data.
var definitions = map[Code]definition{
	InternalServerError:     {http.StatusInternalServerError, "Erro interno no servidor"},
	ValidationError:         {http.StatusBadRequest, "Ocorreu um erro de validação"},
	Unauthorized:            {http.StatusUnauthorized, "Token de acesso ausente ou inválido"},
	UserNotFound:            {http.StatusNotFound, "Usuário não encontrado"},
	UserAlreadyExists:       {http.StatusConflict, "Um usuário com esse nome de usuário ou e-mail já existe"},
	UserNameAlreadyExists:   {http.StatusConflict, "Um usuário com esse nome de usuário já existe"},
	UserEmailAlreadyExists:  {http.StatusConflict, "Um usuário com esse e-mail já existe"},
	EmailOrPasswordWrong:    {http.StatusUnauthorized, "E-mail ou senha incorretos"},
	MovieNotFound:           {http.StatusNotFound, "Filme não encontrado"},
	MovieTitleAlreadyExists: {http.StatusConflict, "Um filme com esse título já existe"},
	ErrorCreatingMovie:      {http.StatusInternalServerError, "Erro ao criar filme"},
	MovieAlreadyRented:      {http.StatusConflict, "O filme já está alugado"},
	ReviewNotRentedMovie:    {http.StatusBadRequest, "Tentativa de avaliar um filme que não foi alugado"},
	ReviewAlreadyRated:      {http.StatusConflict, "Tentativa de avaliar um filme que já foi avaliado"},
}

// Error is a domain error tied to a response status and localized message.
type Error struct {
	Code    Code
	Status  int
	Message string
	Data    map[string]any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// New builds an Error from its code. Unknown codes degrade to
// INTERNAL_SERVER_ERROR. Placeholders in the message template are replaced
// with the matching entries from data.
func New(code Code, data ...map[string]any) *Error {
	def, ok := definitions[code]
	if !ok {
		code = InternalServerError
		def = definitions[InternalServerError]
	}

	var d map[string]any
	if len(data) > 0 && data[0] != nil {
		d = data[0]
	} else {
		d = map[string]any{}
	}

	message := def.message
	for key, value := range d {
		placeholder := fmt.Sprintf("{%s}", key)
		message = strings.ReplaceAll(message, placeholder, fmt.Sprintf("%v", value))
	}

	return &Error{
		Code:    code,
		Status:  def.status,
		Message: message,
		Data:    d,
	}
}

// Internal wraps an unexpected failure into the generic 500 error, keeping
// the cause in the data payload the way the original API reported it.
func Internal(err error) *Error {
	return New(InternalServerError, map[string]any{"errors": err.Error()})
}
