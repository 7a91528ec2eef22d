package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	err := validate.RegisterValidation("command_type", validateCommandType)
	if err != nil {
		return
	}
}

// ValidateStruct runs the shared validator over any tagged struct.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateCommandType(fl validator.FieldLevel) bool {
	cmdType := fl.Field().String()
	validTypes := []string{
		"lock", "reboot", "wipe", "showMessage",
		"enableLostMode", "disableLostMode", "resetPassword", "clearAppData",
	}

	for _, valid := range validTypes {
		if cmdType == valid {
			return true
		}
	}
	return false
}
