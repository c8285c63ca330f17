package translate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(SetLanguage("en-US"))
	assert.Equal("register 9 invalid", From("register %d invalid", 9))
	assert.Equal("halted", From("halted"))
}

func TestSetLanguage_Invalid(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(SetLanguage("en-US"))
	assert.Error(SetLanguage("not a language tag!"))

	// The previous printer survives a bad request.
	assert.Equal("halted", From("halted"))
}

func TestNewError(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(message.SetString(language.AmericanEnglish, "disk on fire", "disk on fire"))
	assert.NoError(message.SetString(language.French, "disk on fire", "disque en feu"))
	t.Cleanup(func() { _ = SetLanguage("en-US") })

	err := NewError("disk on fire")
	assert.ErrorIs(err, err)
	assert.False(errors.Is(NewError("disk on fire"), err))

	assert.NoError(SetLanguage("en-US"))
	assert.Equal("disk on fire", err.Error())

	// Errors created before a language change follow it.
	assert.NoError(SetLanguage("fr"))
	assert.Equal("disque en feu", err.Error())
}
