package handlers

import (
	"sync"

	"github.com/SscSPs/hord_manager/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the domain-specific tags used by the request DTOs to gin's validator.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("pegtype", func(fl validator.FieldLevel) bool {
			_, err := domain.ParsePegType(fl.Field().String())
			return err == nil
		})
	})
}
