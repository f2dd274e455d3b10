package bigint

// Int is a signed arbitrary-precision integer, used only for the
// intermediate Bezout coefficients produced by EGCD. The rest of this
// module works exclusively in non-negative UInt; Int exists because egcd's
// recurrence genuinely needs signed bookkeeping (see spec: "x and y may be
// negative").
type Int struct {
	Neg bool
	Mag UInt
}

// IntFromUInt wraps a non-negative UInt as a (non-negative) Int.
func IntFromUInt(u UInt) Int {
	return Int{Mag: u}
}

// Sign reports -1, 0, or 1.
func (i Int) Sign() int {
	if i.Mag.IsZero() {
		return 0
	}

	if i.Neg {
		return -1
	}

	return 1
}

func negInt(a Int) Int {
	if a.Mag.IsZero() {
		return a
	}

	return Int{Neg: !a.Neg, Mag: a.Mag}
}

func addInt(a, b Int) Int {
	if a.Mag.IsZero() {
		return b
	}

	if b.Mag.IsZero() {
		return a
	}

	if a.Neg == b.Neg {
		return Int{Neg: a.Neg, Mag: Add(a.Mag, b.Mag)}
	}

	switch Cmp(a.Mag, b.Mag) {
	case 0:
		return Int{}
	case 1:
		return Int{Neg: a.Neg, Mag: Sub(a.Mag, b.Mag)}
	default:
		return Int{Neg: b.Neg, Mag: Sub(b.Mag, a.Mag)}
	}
}

func subInt(a, b Int) Int {
	return addInt(a, negInt(b))
}

// mulUIntSigned returns a * q, where q is a non-negative UInt.
func mulUIntSigned(a Int, q UInt) Int {
	mag := Mul(a.Mag, q)
	if mag.IsZero() {
		return Int{}
	}

	return Int{Neg: a.Neg, Mag: mag}
}

// ModInt reduces a signed integer into the range [0, m), matching Go/Python
// floor-mod semantics for a non-negative modulus.
func ModInt(a Int, m UInt) (UInt, error) {
	r, err := Mod(a.Mag, m)
	if err != nil {
		return Zero(), err
	}

	if !a.Neg || r.IsZero() {
		return r, nil
	}

	return Sub(m, r), nil
}
