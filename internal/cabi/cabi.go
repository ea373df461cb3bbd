//go:build cgo_abi

// Package cabi documents the C ABI surface bindings.h exposed, translated
// to what the same functions would look like as cgo exports against this
// engine. It is deliberately excluded from the default build graph (no
// ordinary `go build`/`go test` pulls in a C toolchain because of it) —
// this file is documentation-as-code, not a maintained binding layer.
package cabi

import "C"

// scc_action_get_type: returns the action's keyword. The original's
// returned string lives "at least until action is deallocated"; this
// binding instead copies into a C string the caller must free, since Go
// has no manual refcounting to hook the original's lifetime contract into.
//
//export scc_action_get_type
func scc_action_get_type(handle C.uint64_t) *C.char { return nil }

// scc_action_get_property: returns the named property as a parameter
// handle, or a null handle if the action has no such property.
//
//export scc_action_get_property
func scc_action_get_property(handle C.uint64_t, name *C.char) C.uint64_t { return 0 }

// scc_action_get_compressed: returns the action's Compress() result as a
// handle, or the same handle back if compression is a no-op — the
// original instead returns NULL for "compresses to itself", a distinction
// this binding doesn't need to preserve since handles here aren't
// refcounted.
//
//export scc_action_get_compressed
func scc_action_get_compressed(handle C.uint64_t) C.uint64_t { return 0 }

// scc_action_get_children: returns the action's child actions as a tuple
// parameter handle, or a null handle if the action has none.
//
//export scc_action_get_children
func scc_action_get_children(handle C.uint64_t) C.uint64_t { return 0 }

// scc_parse_param_list: parses a parameter-list string (everything after
// an action keyword's opening '(') into a tuple parameter handle.
//
//export scc_parse_param_list
func scc_parse_param_list(str *C.char) C.uint64_t { return 0 }

// scc_action_get_child: returns a modifier's single child action, or a
// null handle for an action kind with no child slot.
//
//export scc_action_get_child
func scc_action_get_child(handle C.uint64_t) C.uint64_t { return 0 }

// scc_action_ref / scc_action_unref, scc_parameter_ref / scc_parameter_unref:
// the original's refcounting pair. Realized here as no-ops — Go's garbage
// collector owns the lifetime of everything behind a handle, so these
// exist only so a caller written against the original ABI compiles
// unmodified against this one.
//
//export scc_action_ref
func scc_action_ref(handle C.uint64_t) C.uint64_t { return handle }

//export scc_action_unref
func scc_action_unref(handle C.uint64_t) {}

//export scc_parameter_ref
func scc_parameter_ref(handle C.uint64_t) C.uint64_t { return handle }

//export scc_parameter_unref
func scc_parameter_unref(handle C.uint64_t) {}

// scc_error_get_message: returns a parse/construction error's message.
//
//export scc_error_get_message
func scc_error_get_message(errHandle C.uint64_t) *C.char { return nil }

// scc_action_new_from_array: constructs an action from a keyword plus an
// array of already-parsed parameter handles.
//
//export scc_action_new_from_array
func scc_action_new_from_array(keyword *C.char, count C.size_t, params *C.uint64_t) C.uint64_t {
	return 0
}

// scc_parameter_as_action / scc_parameter_as_string / scc_parameter_as_int /
// scc_parameter_as_float: unwrap a parameter handle's concrete value. The
// original's macro-guarded redeclaration (the bindings header #undefs
// these names before declaring them, since elsewhere they're macros over
// inline accessors) has no Go equivalent; here they are ordinary exported
// functions from the start.
//
//export scc_parameter_as_action
func scc_parameter_as_action(handle C.uint64_t) C.uint64_t { return 0 }

//export scc_parameter_as_string
func scc_parameter_as_string(handle C.uint64_t) *C.char { return nil }

//export scc_parameter_as_int
func scc_parameter_as_int(handle C.uint64_t) C.int64_t { return 0 }

//export scc_parameter_as_float
func scc_parameter_as_float(handle C.uint64_t) C.float { return 0 }

// scc_parameter_tuple_get_count / scc_parameter_tuple_get_child: tuple
// parameter accessors, used by scc_action_get_children's result.
//
//export scc_parameter_tuple_get_count
func scc_parameter_tuple_get_count(handle C.uint64_t) C.uint8_t { return 0 }

//export scc_parameter_tuple_get_child
func scc_parameter_tuple_get_child(handle C.uint64_t, n C.uint8_t) C.uint64_t { return 0 }
