package site

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/riverfjs/articlemark/internal/fetch"
	"github.com/riverfjs/articlemark/internal/util"
)

// safeURL rejects dangerous schemes and malformed absolute URLs.
// Relative paths such as assets/images/a.jpg are accepted.
var safeURL = validation.By(func(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if util.IsDangerousURL(strings.TrimSpace(s)) {
		return validation.NewError("site.url_unsafe", "must not use a script or file scheme")
	}
	if fetch.IsRemote(s) {
		return is.URL.Validate(s)
	}
	return nil
})

// linkRule accepts an empty link, "#" or a safe URL.
var linkRule = validation.By(func(value any) error {
	s, _ := value.(string)
	if s == "" || s == "#" {
		return nil
	}
	return validation.Validate(s, safeURL)
})

// Validate implements validation.Validatable.
func (a Article) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Title,
			validation.Required.When(strings.TrimSpace(a.Content) == "" && strings.TrimSpace(a.Description) == "").
				Error("title is required when the article has no content")),
		validation.Field(&a.Image, safeURL),
		validation.Field(&a.Images, validation.Each(validation.Required, safeURL)),
		validation.Field(&a.Link, linkRule),
		validation.Field(&a.Format, validation.In(FormatText, FormatMarkdown)),
	)
}

// Validate implements validation.Validatable.
func (f ArticleFeed) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Articles),
	)
}

// Validate implements validation.Validatable.
func (s Section) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Title, validation.Required),
	)
}

// Validate implements validation.Validatable.
func (s Stat) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Number, validation.Min(0)),
		validation.Field(&s.Label, validation.Required),
	)
}

// Validate implements validation.Validatable.
func (a About) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Sections),
		validation.Field(&a.Stats),
	)
}

// Validate implements validation.Validatable.
func (s Slide) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Image, safeURL),
	)
}

// Validate implements validation.Validatable.
func (f SliderFeed) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Sliders),
	)
}

// IsValidationError reports whether err came from a Validate method.
func IsValidationError(err error) bool {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return true
	}
	var verr validation.Error
	return errors.As(err, &verr)
}
