package http

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/nurpe/leasing-service/internal/model"
)

var validatorsOnce sync.Once

// registerValidators adds the custom tags used by the request structs to
// gin's validator engine.
func registerValidators() {
	validatorsOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = engine.RegisterValidation("notpast", notPast)
		_ = engine.RegisterValidation("heating", heating)
	})
}

// notPast accepts a date string that is today or later (UTC).
func notPast(fl validator.FieldLevel) bool {
	parsed, err := parseDate(fl.Field().String())
	if err != nil {
		return false
	}
	y, m, d := time.Now().UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	py, pm, pd := parsed.UTC().Date()
	return !time.Date(py, pm, pd, 0, 0, 0, 0, time.UTC).Before(today)
}

func heating(fl validator.FieldLevel) bool {
	return model.HeatingType(fl.Field().String()).Valid()
}
