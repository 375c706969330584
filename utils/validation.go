package utils

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var registerOnce sync.Once

// RegisterValidators adds the custom tags used by request structs to gin's
// validator. Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			// notblank rejects whitespace-only strings that pass "required"
			_ = v.RegisterValidation("notblank", validators.NotBlank)
		}
	})
}
