// Package i18n localizes user-facing messages. Message keys are English
// strings; Spanish is the default locale and English is served when the
// client asks for it through Accept-Language.
package i18n

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const printerKey = "printer"

// Supported lists the locales with a catalog, default first.
var Supported = []language.Tag{language.Spanish, language.English}

// Default is the locale used when the request does not choose one.
var Default = language.Spanish

// Resolve picks the supported locale that best matches an Accept-Language
// header value, preferring fallback when nothing matches.
func Resolve(acceptLanguage string, fallback language.Tag) language.Tag {
	supported := []language.Tag{fallback}
	for _, tag := range Supported {
		if tag != fallback {
			supported = append(supported, tag)
		}
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}

	_, idx, confidence := language.NewMatcher(supported).Match(tags...)
	if confidence == language.No {
		return fallback
	}
	return supported[idx]
}

// Middleware stores a message printer for the negotiated locale in the Gin
// context and echoes the locale in Content-Language.
func Middleware(fallback language.Tag) gin.HandlerFunc {
	return func(c *gin.Context) {
		tag := Resolve(c.GetHeader("Accept-Language"), fallback)
		c.Set(printerKey, message.NewPrinter(tag))
		c.Header("Content-Language", tag.String())
		c.Next()
	}
}

// Printer returns the request's printer, or a Default-locale printer when the
// middleware did not run.
func Printer(c *gin.Context) *message.Printer {
	if v, ok := c.Get(printerKey); ok {
		if p, ok := v.(*message.Printer); ok {
			return p
		}
	}
	return message.NewPrinter(Default)
}

// T localizes key for the request.
func T(c *gin.Context, key string, args ...any) string {
	return Printer(c).Sprintf(key, args...)
}

// ParseTag parses a locale name, returning Default for unsupported values.
func ParseTag(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return Default
	}
	for _, supported := range Supported {
		base, _ := tag.Base()
		sbase, _ := supported.Base()
		if base == sbase {
			return supported
		}
	}
	return Default
}
