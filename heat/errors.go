// SPDX-License-Identifier: MIT

package heat

import "errors"

var (
	// ErrInvalidDimension indicates Node.Dim outside {1, 2, 3}.
	ErrInvalidDimension = errors.New("heat: dimension must be 1, 2 or 3")

	// ErrInvalidLength indicates a non-positive or non-finite side length.
	ErrInvalidLength = errors.New("heat: side length must be finite and > 0")

	// ErrInvalidDiffusivity indicates a non-positive or non-finite diffusivity.
	ErrInvalidDiffusivity = errors.New("heat: diffusivity must be finite and > 0")

	// ErrNegativeTime indicates t < 0 or a non-finite time.
	ErrNegativeTime = errors.New("heat: time must be finite and >= 0")

	// ErrUnknownAxis indicates an axis outside {x, y, z}.
	ErrUnknownAxis = errors.New("heat: unknown axis")

	// ErrAxisOutOfRange indicates an axis beyond the node dimension (e.g. z in 2D).
	ErrAxisOutOfRange = errors.New("heat: axis exceeds dimension")

	// ErrUnknownKind indicates an unrecognized boundary or contribution name.
	ErrUnknownKind = errors.New("heat: unknown kind")

	// ErrUnsupportedBoundary marks boundary conditions without a validated series.
	ErrUnsupportedBoundary = errors.New("heat: boundary condition not supported")

	// ErrNegativeMagnitude indicates a0 < 0 where its d-th root is required (d > 1).
	ErrNegativeMagnitude = errors.New("heat: a0 must be >= 0 in 2D and 3D")
)
