package main

import (
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/landing/contact"
	"github.com/dmitrymomot/landing/core/cookie"
	"github.com/dmitrymomot/landing/core/form"
	"github.com/dmitrymomot/landing/core/handler"
	"github.com/dmitrymomot/landing/core/response"
	"github.com/dmitrymomot/landing/theme"
)

// flashName is the cookie key for the post-redirect contact outcome.
const flashName = "contact_result"

// Banner is the outcome message shown after a submission attempt.
type Banner struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// contactFlash survives the PRG redirect: the banner plus, on failure, the
// submitted values so the visitor does not retype them.
type contactFlash struct {
	Banner Banner            `json:"banner"`
	Values map[string]string `json:"values,omitempty"`
}

// FormState drives the contact form template: sticky values, per-field
// errors, and the field that should receive focus.
type FormState struct {
	Values map[string]string
	Errors map[string]string
	Focus  string
}

// HomePageData is the landing page template payload.
type HomePageData struct {
	Title  string
	Theme  theme.Theme
	Banner *Banner
	Form   FormState
}

func emptyFormState() FormState {
	return FormState{
		Values: map[string]string{},
		Errors: map[string]string{},
	}
}

// homeHandler renders the landing page. A flash left by a previous
// submission becomes the outcome banner; failed submissions also restore
// the typed values.
func homeHandler(tmpl *template.Template, themes *theme.Store, cookies *cookie.Manager) handler.HandlerFunc[*Context] {
	return func(ctx *Context) handler.Response {
		data := HomePageData{
			Title: "Landing",
			Theme: themes.Resolve(ctx.Request()),
			Form:  emptyFormState(),
		}

		var flash contactFlash
		if err := cookies.GetFlash(ctx.ResponseWriter(), ctx.Request(), flashName, &flash); err == nil {
			data.Banner = &flash.Banner
			if len(flash.Values) > 0 {
				data.Form.Values = flash.Values
			}
		}

		return response.Template(tmpl, data)
	}
}

// contactHandler processes a contact form submission.
//
// Validation failures re-render the form with per-field errors and focus on
// the first invalid field (422 for JSON clients). Valid submissions go
// through the contact service; the outcome banner travels via flash cookie
// in the HTML flow so a refresh cannot resubmit.
func contactHandler(svc *contact.Service, tmpl *template.Template, themes *theme.Store, cookies *cookie.Manager) handler.HandlerFunc[*Context] {
	return func(ctx *Context) handler.Response {
		var sub contact.Submission
		if err := ctx.Bind(&sub); err != nil {
			verrs := form.ExtractValidationErrors(err)
			if verrs == nil {
				return response.Error(response.ErrBadRequest.WithError(err))
			}
			return invalidFormResponse(ctx, tmpl, themes, sub, verrs)
		}

		receipt, err := svc.Submit(ctx, sub)
		switch {
		case err == nil:
			// fall through to render the receipt
		case errors.Is(err, contact.ErrSuperseded):
			// A newer attempt owns the outcome; this one stays silent.
			if ctx.WantsJSON() {
				return response.NoContent()
			}
			return response.RedirectSeeOther("/")
		default:
			if verrs := form.ExtractValidationErrors(err); verrs != nil {
				return invalidFormResponse(ctx, tmpl, themes, sub, verrs)
			}
			return response.Error(err)
		}

		if ctx.WantsJSON() {
			return response.JSON(receipt)
		}

		flash := contactFlash{
			Banner: Banner{Success: receipt.Success, Message: receipt.Message},
		}
		if !receipt.Success {
			// Keep the typed values so the visitor can retry after the
			// redirect. Successful submissions start from a clean form.
			flash.Values = map[string]string{
				"name":    sub.Name,
				"email":   sub.Email,
				"message": sub.Message,
			}
		}
		if err := cookies.SetFlash(ctx.ResponseWriter(), flashName, flash); err != nil {
			return response.Error(err)
		}

		return response.RedirectSeeOther("/")
	}
}

// invalidFormResponse renders the validation outcome: a 422 JSON body with
// per-field messages, or the landing page with error slots filled and the
// first invalid field marked for focus.
func invalidFormResponse(ctx *Context, tmpl *template.Template, themes *theme.Store, sub contact.Submission, verrs form.ValidationErrors) handler.Response {
	if ctx.WantsJSON() {
		return response.JSONWithStatus(map[string]any{
			"errors": verrs.Fields(),
		}, http.StatusUnprocessableEntity)
	}

	state := FormState{
		Values: map[string]string{
			"name":    sub.Name,
			"email":   sub.Email,
			"message": sub.Message,
		},
		Errors: verrs.Fields(),
	}
	if first, ok := verrs.First(); ok {
		state.Focus = first.Field
	}

	data := HomePageData{
		Title: "Landing",
		Theme: themes.Resolve(ctx.Request()),
		Form:  state,
	}
	return response.TemplateWithStatus(tmpl, data, http.StatusUnprocessableEntity)
}

// fieldCheck is a single form field submitted for validation ahead of the
// full form post.
type fieldCheck struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// FieldCheckResult reports whether a field value currently passes its rule.
type FieldCheckResult struct {
	Field   string `json:"field"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// validateFieldHandler checks one contact form field so the page can show
// or clear an error while the visitor is still typing.
func validateFieldHandler(svc *contact.Service) handler.HandlerFunc[*Context] {
	return func(ctx *Context) handler.Response {
		var req fieldCheck
		if err := ctx.Bind(&req); err != nil {
			return response.Error(response.ErrBadRequest.WithError(err))
		}

		result := FieldCheckResult{Field: req.Field, Valid: true}
		if err := svc.ValidateField(req.Field, req.Value); err != nil {
			result.Valid = false
			var verr form.ValidationError
			if errors.As(err, &verr) {
				result.Message = verr.Message
			} else {
				result.Message = err.Error()
			}
		}

		return response.JSON(result)
	}
}

// themeToggleHandler flips the theme cookie and sends the visitor back to
// the page they came from.
func themeToggleHandler(themes *theme.Store) handler.HandlerFunc[*Context] {
	return func(ctx *Context) handler.Response {
		if _, err := themes.Flip(ctx.ResponseWriter(), ctx.Request()); err != nil {
			return response.Error(err)
		}
		return response.RedirectSeeOther(refererTarget(ctx.Request()))
	}
}

// refererTarget derives a redirect target from the request Referer. Only
// same-origin referrers are honored, reduced to their path, query, and
// fragment; anything else falls back to the landing page.
func refererTarget(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil {
		return "/"
	}
	if ref.Host != "" && ref.Host != r.Host {
		return "/"
	}

	target := ref.EscapedPath()
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return "/"
	}
	if ref.RawQuery != "" {
		target += "?" + ref.RawQuery
	}
	if ref.Fragment != "" {
		target += "#" + ref.Fragment
	}
	return target
}
