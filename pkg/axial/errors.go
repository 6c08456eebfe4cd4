package axial

import "errors"

// Configuration errors: the assembly as described cannot be expanded. These
// indicate a case-construction defect, never a transient condition.
var (
	ErrAmbiguousLinkage  = errors.New("multiple axial linkage candidates")
	ErrNoTargetComponent = errors.New("no axial expansion target component")
	ErrAmbiguousTarget   = errors.New("multiple axial expansion target candidates")
	ErrAllFluidBlock     = errors.New("block contains no solid components")
	ErrMissingDummyBlock = errors.New("assembly has no dummy block at the top")
)

// ErrNegativeBlockHeight is a numeric error: the requested expansion drove a
// block height below zero, which is not physical.
var ErrNegativeBlockHeight = errors.New("block height fell below zero during axial expansion")
