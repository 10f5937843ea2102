// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergey Gerasimov

// Package validators provides abstractions for request validation before
// anything is sent over the wire.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//
// Usage patterns:
//  1. Implement Validator to encode domain-specific validation logic.
//  2. Inject Validator implementations into the API client.
//  3. Call Validate with context, value, and optional field names to enforce rules.
//
// Keeping validation out of the transport layer means a request that the
// Bot API would reject anyway fails locally, without spending a network
// round trip.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
