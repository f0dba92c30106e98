package usecase

import (
	"strings"

	"shareit/internal/user"
)

func (uc *implUseCase) validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return user.ErrBlankName
	}
	return nil
}

func (uc *implUseCase) validateEmail(email string) error {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || strings.ContainsAny(email, " \t") {
		return user.ErrInvalidEmail.WithDetailf("email %q is invalid", email)
	}
	return nil
}
