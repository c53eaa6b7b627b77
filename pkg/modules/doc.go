// Package modules controls which feature areas (voice, whatsapp, billing,
// analytics...) are visible and usable per organization.
//
// A global catalog lists every module; an organization activates a module by
// having a row with enabled=true. No row means inactive. A disabled row may
// still carry configuration - Config is readable regardless of the enabled
// flag so settings survive a temporary switch-off.
//
// Gate reads the current organization from the context (pkg/org). A
// super-admin context bypasses all checks; a context without an organization
// fails them all. Feature overrides (pkg/override) compose on top: callers
// that honor both must AND them, with the override's deny winning.
package modules
