package helper

import (
	"log"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

// NewHTTPHelper builds the helper with an English-translated validator.
func NewHTTPHelper() *HTTPHelper {
	locale := en.New()
	uni := ut.New(locale, locale)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	if err := en_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		log.Printf("Failed to register validator translations: %v", err)
	}

	return &HTTPHelper{
		Validate:   validate,
		Translator: translator,
	}
}
