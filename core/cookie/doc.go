// Package cookie provides secure HTTP cookie management with HMAC signing,
// key rotation, and one-time flash messages.
//
// The Manager applies secure defaults (HttpOnly, SameSite=Lax, path "/") and
// supports multiple secrets so keys can be rotated without invalidating
// cookies signed with an older key.
//
// Basic usage:
//
//	manager, err := cookie.New([]string{os.Getenv("COOKIE_SECRET")})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Plain cookie
//	manager.Set(w, "theme", "dark", cookie.WithMaxAge(365*24*60*60))
//
//	// Signed cookie, verified on read
//	manager.SetSigned(w, "session", sessionID)
//	id, err := manager.GetSigned(r, "session")
//
// Flash messages survive exactly one redirect and are deleted on read:
//
//	manager.SetFlash(w, "contact", result)
//	var result ContactResult
//	if err := manager.GetFlash(w, r, "contact", &result); err == nil {
//		// render the banner
//	}
package cookie
