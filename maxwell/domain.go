package maxwell

// ControlCode is a condition code guarding execution. Codes 16-31 have no
// documented meaning; they are valid and kept as raw values.
type ControlCode int

//go:generate go tool stringer -linecomment -type=ControlCode
const (
	CC_F   = ControlCode(0)  // F
	CC_LT  = ControlCode(1)  // LT
	CC_EQ  = ControlCode(2)  // EQ
	CC_LE  = ControlCode(3)  // LE
	CC_GT  = ControlCode(4)  // GT
	CC_NE  = ControlCode(5)  // NE
	CC_GE  = ControlCode(6)  // GE
	CC_NUM = ControlCode(7)  // NUM
	CC_NAN = ControlCode(8)  // NAN
	CC_LTU = ControlCode(9)  // LTU
	CC_EQU = ControlCode(10) // EQU
	CC_LEU = ControlCode(11) // LEU
	CC_GTU = ControlCode(12) // GTU
	CC_NEU = ControlCode(13) // NEU
	CC_GEU = ControlCode(14) // GEU
	CC_T   = ControlCode(15) // T
)

// Valid returns true for codes 0-31.
func (cc ControlCode) Valid() bool {
	return cc >= 0 && cc <= 31
}

// Named returns true if the code has a documented meaning.
func (cc ControlCode) Named() bool {
	return cc >= CC_F && cc <= CC_T
}

// AttributeLoadMode is the data width of attribute loads and stores.
type AttributeLoadMode int

//go:generate go tool stringer -linecomment -type=AttributeLoadMode
const (
	ATTR_M32  = AttributeLoadMode(0) // 32
	ATTR_M64  = AttributeLoadMode(1) // 64
	ATTR_M96  = AttributeLoadMode(2) // 96
	ATTR_M128 = AttributeLoadMode(3) // 128
)

// Valid returns true for modes 0-3.
func (mode AttributeLoadMode) Valid() bool {
	return mode >= ATTR_M32 && mode <= ATTR_M128
}

// AtomPrimitiveType is the data type of a global memory atomic.
type AtomPrimitiveType int

//go:generate go tool stringer -linecomment -type=AtomPrimitiveType
const (
	ATOM_TYPE_U32          = AtomPrimitiveType(0) // U32
	ATOM_TYPE_S32          = AtomPrimitiveType(1) // S32
	ATOM_TYPE_U64          = AtomPrimitiveType(2) // U64
	ATOM_TYPE_F32_FTZ_RN   = AtomPrimitiveType(3) // F32.FTZ.RN
	ATOM_TYPE_F16X2_FTZ_RN = AtomPrimitiveType(4) // F16x2.FTZ.RN
	ATOM_TYPE_S64          = AtomPrimitiveType(5) // S64
)

// Valid returns true for types 0-7.
func (pt AtomPrimitiveType) Valid() bool {
	return pt >= 0 && pt <= 7
}

// AtomOperation is the operation of a global memory atomic.
type AtomOperation int

//go:generate go tool stringer -linecomment -type=AtomOperation
const (
	ATOM_OP_ADD     = AtomOperation(0)  // ADD
	ATOM_OP_MIN     = AtomOperation(1)  // MIN
	ATOM_OP_MAX     = AtomOperation(2)  // MAX
	ATOM_OP_INC     = AtomOperation(3)  // INC
	ATOM_OP_DEC     = AtomOperation(4)  // DEC
	ATOM_OP_AND     = AtomOperation(5)  // AND
	ATOM_OP_OR      = AtomOperation(6)  // OR
	ATOM_OP_XOR     = AtomOperation(7)  // XOR
	ATOM_OP_EXCH    = AtomOperation(8)  // EXCH
	ATOM_OP_SAFEADD = AtomOperation(10) // SAFEADD
)

// Valid returns true for operations 0-15.
func (op AtomOperation) Valid() bool {
	return op >= 0 && op <= 15
}

// AtomsPrimitiveType is the data type of a shared memory atomic.
type AtomsPrimitiveType int

//go:generate go tool stringer -linecomment -type=AtomsPrimitiveType
const (
	ATOMS_TYPE_U32 = AtomsPrimitiveType(0) // U32
	ATOMS_TYPE_S32 = AtomsPrimitiveType(1) // S32
	ATOMS_TYPE_U64 = AtomsPrimitiveType(2) // U64
	ATOMS_TYPE_S64 = AtomsPrimitiveType(3) // S64
)

// Valid returns true for types 0-3.
func (pt AtomsPrimitiveType) Valid() bool {
	return pt >= ATOMS_TYPE_U32 && pt <= ATOMS_TYPE_S64
}

// AtomsOperation is the operation of a shared memory atomic.
type AtomsOperation int

//go:generate go tool stringer -linecomment -type=AtomsOperation
const (
	ATOMS_OP_ADD  = AtomsOperation(0) // ADD
	ATOMS_OP_MIN  = AtomsOperation(1) // MIN
	ATOMS_OP_MAX  = AtomsOperation(2) // MAX
	ATOMS_OP_INC  = AtomsOperation(3) // INC
	ATOMS_OP_DEC  = AtomsOperation(4) // DEC
	ATOMS_OP_AND  = AtomsOperation(5) // AND
	ATOMS_OP_OR   = AtomsOperation(6) // OR
	ATOMS_OP_XOR  = AtomsOperation(7) // XOR
	ATOMS_OP_EXCH = AtomsOperation(8) // EXCH
)

// Valid returns true for operations 0-15.
func (op AtomsOperation) Valid() bool {
	return op >= 0 && op <= 15
}

// AtomicCasPrimitiveType is the data type of a compare and swap.
type AtomicCasPrimitiveType int

//go:generate go tool stringer -linecomment -type=AtomicCasPrimitiveType
const (
	CAS_TYPE_U32 = AtomicCasPrimitiveType(0) // U32
	CAS_TYPE_U64 = AtomicCasPrimitiveType(1) // U64
)

// Valid returns true for types 0-1.
func (pt AtomicCasPrimitiveType) Valid() bool {
	return pt == CAS_TYPE_U32 || pt == CAS_TYPE_U64
}

// AtomsCasOperation is the variant of a shared memory compare and swap.
type AtomsCasOperation int

//go:generate go tool stringer -linecomment -type=AtomsCasOperation
const (
	ATOMS_CAS_OP_CAS       = AtomsCasOperation(0) // CAS
	ATOMS_CAS_OP_CAST      = AtomsCasOperation(1) // CAST
	ATOMS_CAS_OP_CAST_SPIN = AtomsCasOperation(2) // CAST.SPIN
)

// Valid returns true for operations 0-3.
func (op AtomsCasOperation) Valid() bool {
	return op >= 0 && op <= 3
}

// B2ROperation selects what B2R moves into its destination register.
type B2ROperation int

//go:generate go tool stringer -linecomment -type=B2ROperation
const (
	B2R_OP_BAR    = B2ROperation(0) // BAR
	B2R_OP_RESULT = B2ROperation(1) // RESULT
	B2R_OP_WARP   = B2ROperation(2) // WARP
)

// Valid returns true for operations 0-3.
func (op B2ROperation) Valid() bool {
	return op >= 0 && op <= 3
}

// domain is an enumerated operand type.
type domain interface {
	~int
	Valid() bool
	String() string
}

// checkDomain returns ErrDomain if value is outside of its domain.
func checkDomain[T domain](name string, value T) error {
	if !value.Valid() {
		return ErrDomain{Domain: name, Value: int(value)}
	}
	return nil
}
