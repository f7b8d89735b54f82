package domain

import (
	interfaces "cryptodemo/internal/domain/interfaces"
	types "cryptodemo/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	CurveID     = types.CurveID
	HashType    = types.HashType
	KeyKind     = types.KeyKind
	KDFType     = types.KDFType
	CipherSuite = types.CipherSuite
	ErrorCode   = types.ErrorCode
	Error       = types.Error
	Report      = types.Report
	ReportKind  = types.ReportKind
	StageResult = types.StageResult
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Library     = interfaces.Library
	RNG         = interfaces.RNG
	Hash        = interfaces.Hash
	Key         = interfaces.Key
	AEAD        = interfaces.AEAD
	Suite       = interfaces.Suite
	Terminal    = interfaces.Terminal
	ReportStore = interfaces.ReportStore
)
