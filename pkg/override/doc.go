// Package override suppresses individual permissions and integrations for
// one organization, independent of plan or module state.
//
// An organization has at most one override row holding two deny-lists:
// disabled permission keys and disabled integration slugs. Presence in
// either list is an unconditional deny - it wins over an enabled module or
// a generous plan. Absence of the row is equivalent to empty lists.
//
// ModuleAvailable composes this gate with the module gate: a feature area
// is usable only when the module is enabled AND its integration is not
// overridden off.
package override
