// Package aria maps UI interaction state onto accessibility attributes.
//
// # Overview
//
// The package has three layers:
//
//  1. Vocabulary - the closed set of attribute keys (Key) and the value domain
//     each key accepts (Domain, Value)
//  2. Mappers - pure functions such as Toggle, Disclosure and FormField that turn
//     typed state into an AttributeSet
//  3. Composer - Merge, which folds several sets into one with later sets winning
//
// Nothing here touches a live interface. A host rendering layer takes the final
// AttributeSet and projects it onto markup.
//
// # Mapping State
//
// Semantic booleans are always emitted as the strings "true" and "false":
//
//	attrs := aria.Toggle(true)               // aria-pressed="true"
//	attrs = aria.Disclosure(false, "panel-1") // aria-expanded="false" aria-controls="panel-1"
//	attrs = aria.Checked(aria.Mixed)          // aria-checked="mixed"
//
// FormField omits aria-invalid entirely for valid fields. Absence and "false" mean
// different things to assistive technology, so the key is never emitted as "false".
//
// # Composing Sets
//
// Merge copies its arguments left to right into a new set:
//
//	attrs := aria.Merge(
//		aria.DialogTrigger("settings-dialog", open),
//		aria.DescribedBy("settings-hint"),
//		aria.DisabledInteractive(),
//	)
//
// No argument is modified and the result shares nothing with the inputs.
//
// # Validation
//
// Mappers never fail. Callers that want to reject out-of-domain input can run
// ValidateID on identifiers before mapping, or AttributeSet.Validate on a result.
// Both return errors matching errors.ErrInvalidArgument from pkg/errors.
//
// # Concurrency
//
// Every function in this package is pure. Package-level tables are read-only and
// copied before they are handed out, so all functions are safe for concurrent use.
package aria
