package supabase

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Cookie is one name/value pair together with its optional write attributes.
type Cookie struct {
	Name    string
	Value   string
	Options *CookieOptions
}

// CookieOptions carries the attributes applied when a cookie is written.
// Zero values fall back to the jar's defaults; in particular an empty Path
// is written as "/". Every cookie the jar writes is HttpOnly: nothing in
// the session flow is meant to be script-readable.
type CookieOptions struct {
	Path     string
	Domain   string
	MaxAge   int
	Expires  time.Time
	Secure   bool
	SameSite string
}

// CookieJar is the cookie surface the client factory is wired to: reading
// every cookie attached to the current request and writing updated session
// cookies onto the response.
type CookieJar interface {
	GetAll() []Cookie
	SetAll([]Cookie) error
}

// fiberJar adapts a fiber request/response pair to the CookieJar contract.
type fiberJar struct {
	ctx *fiber.Ctx
}

// NewFiberJar wraps the given request context. The jar is only valid for
// the lifetime of that request.
func NewFiberJar(c *fiber.Ctx) CookieJar {
	return &fiberJar{ctx: c}
}

func (j *fiberJar) GetAll() []Cookie {
	var cookies []Cookie
	j.ctx.Request().Header.VisitAllCookie(func(name, value []byte) {
		cookies = append(cookies, Cookie{Name: string(name), Value: string(value)})
	})
	return cookies
}

func (j *fiberJar) SetAll(cookies []Cookie) error {
	for _, ck := range cookies {
		fc := &fiber.Cookie{
			Name:     ck.Name,
			Value:    ck.Value,
			Path:     "/",
			HTTPOnly: true,
			SameSite: "Lax",
		}
		if o := ck.Options; o != nil {
			if o.Path != "" {
				fc.Path = o.Path
			}
			fc.Domain = o.Domain
			fc.MaxAge = o.MaxAge
			fc.Expires = o.Expires
			fc.Secure = o.Secure
			if o.SameSite != "" {
				fc.SameSite = o.SameSite
			}
		}
		j.ctx.Cookie(fc)
	}
	return nil
}
