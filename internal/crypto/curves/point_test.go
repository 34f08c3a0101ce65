package curves

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecmath/internal/crypto/field"
	"github.com/smallyu/go-ecmath/pkg/ecc"
)

const testPrime = 223

func elem(t *testing.T, num, prime int64) *field.Element {
	t.Helper()
	e, err := field.NewInt64(num, prime)
	require.NoError(t, err)
	return e
}

func testCurve(t *testing.T, a, b, prime int64) *Weierstrass {
	t.Helper()
	c, err := NewWeierstrass(elem(t, a, prime), elem(t, b, prime))
	require.NoError(t, err)
	return c
}

func pt(t *testing.T, x, y int64) *Point {
	t.Helper()
	p, err := NewPoint(elem(t, x, testPrime), elem(t, y, testPrime),
		elem(t, 0, testPrime), elem(t, 7, testPrime))
	require.NoError(t, err)
	return p
}

// allPoints enumerates the affine points of c by brute force.
func allPoints(t *testing.T, c *Weierstrass, prime int64) []*Point {
	t.Helper()
	var points []*Point
	for x := int64(0); x < prime; x++ {
		for y := int64(0); y < prime; y++ {
			fx, fy := elem(t, x, prime), elem(t, y, prime)
			if c.Contains(fx, fy) {
				p, err := c.NewPoint(fx, fy)
				require.NoError(t, err)
				points = append(points, p)
			}
		}
	}
	return points
}

func TestOnCurve(t *testing.T) {
	tests := []struct {
		x, y int64
		ok   bool
	}{
		{192, 105, true},
		{17, 56, true},
		{200, 119, false},
		{1, 193, true},
		{42, 99, false},
	}

	for i, test := range tests {
		_, err := NewPoint(elem(t, test.x, testPrime), elem(t, test.y, testPrime),
			elem(t, 0, testPrime), elem(t, 7, testPrime))
		if test.ok {
			assert.NoError(t, err, "#%d", i)
			continue
		}
		assert.ErrorIs(t, err, ecc.ErrNotOnCurve, "#%d", i)
	}
}

func TestNotOnCurveNamesOperands(t *testing.T) {
	_, err := NewPoint(elem(t, 200, testPrime), elem(t, 119, testPrime),
		elem(t, 0, testPrime), elem(t, 7, testPrime))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(200, 119)")
	assert.Contains(t, err.Error(), "F_223")
}

func TestNewPointFieldMismatch(t *testing.T) {
	_, err := NewPoint(elem(t, 1, 31), elem(t, 193, testPrime),
		elem(t, 0, testPrime), elem(t, 7, testPrime))
	assert.ErrorIs(t, err, ecc.ErrFieldMismatch)

	_, err = NewWeierstrass(elem(t, 0, 31), elem(t, 7, testPrime))
	assert.ErrorIs(t, err, ecc.ErrFieldMismatch)

	_, err = Infinity(elem(t, 0, 31), elem(t, 7, testPrime))
	assert.ErrorIs(t, err, ecc.ErrFieldMismatch)
}

func TestAdd(t *testing.T) {
	tests := []struct {
		x1, y1, x2, y2, x3, y3 int64
	}{
		{192, 105, 17, 56, 170, 142},
		{47, 71, 117, 141, 60, 139},
		{143, 98, 76, 66, 47, 71},
	}

	for i, test := range tests {
		p1, p2 := pt(t, test.x1, test.y1), pt(t, test.x2, test.y2)
		got, err := p1.Add(p2)
		require.NoError(t, err, "#%d", i)
		want := pt(t, test.x3, test.y3)
		assert.True(t, got.Equal(want), "#%d: got %v want %v", i, got, want)
	}
}

func TestAddIdentity(t *testing.T) {
	p := pt(t, 192, 105)
	inf := p.Curve().Infinity()

	got, err := inf.Add(p)
	require.NoError(t, err)
	assert.True(t, got.Equal(p))

	got, err = p.Add(inf)
	require.NoError(t, err)
	assert.True(t, got.Equal(p))

	got, err = inf.Add(inf)
	require.NoError(t, err)
	assert.True(t, got.IsInfinity())
}

func TestAddInverse(t *testing.T) {
	p := pt(t, 192, 105)
	got, err := p.Add(p.Neg())
	require.NoError(t, err)
	assert.True(t, got.IsInfinity(), "P + (-P) = %v", got)
}

func TestDoubleVerticalTangent(t *testing.T) {
	// (0, 0) on y^2 = x^3 + x over F_7 has a vertical tangent.
	c := testCurve(t, 1, 0, 7)
	p, err := c.NewPoint(elem(t, 0, 7), elem(t, 0, 7))
	require.NoError(t, err)

	got, err := p.Add(p)
	require.NoError(t, err)
	assert.True(t, got.IsInfinity(), "got %v", got)
}

func TestCurveMismatch(t *testing.T) {
	p := pt(t, 192, 105)
	other := testCurve(t, 5, 7, testPrime)
	points := allPoints(t, other, testPrime)
	require.NotEmpty(t, points)

	_, err := p.Add(points[0])
	require.ErrorIs(t, err, ecc.ErrCurveMismatch)
	assert.Contains(t, err.Error(), "Point(192, 105)_0_7")
	assert.Contains(t, err.Error(), "_5_7")

	_, err = p.Add(other.Infinity())
	assert.ErrorIs(t, err, ecc.ErrCurveMismatch)

	_, err = p.Add(nil)
	assert.ErrorIs(t, err, ecc.ErrCurveMismatch)
}

func TestScalarMul(t *testing.T) {
	tests := []struct {
		k, x, y, wantX, wantY int64
		infinity              bool
	}{
		{2, 192, 105, 49, 71, false},
		{2, 143, 98, 64, 168, false},
		{2, 47, 71, 36, 111, false},
		{4, 47, 71, 194, 51, false},
		{8, 47, 71, 116, 55, false},
		{21, 47, 71, 0, 0, true},
		{7, 15, 86, 0, 0, true},
		{1, 47, 71, 47, 71, false},
	}

	for i, test := range tests {
		got, err := pt(t, test.x, test.y).ScalarMul(big.NewInt(test.k))
		require.NoError(t, err, "#%d", i)
		if test.infinity {
			assert.True(t, got.IsInfinity(), "#%d: got %v", i, got)
			continue
		}
		want := pt(t, test.wantX, test.wantY)
		assert.True(t, got.Equal(want), "#%d: got %v want %v", i, got, want)
	}

	got, err := pt(t, 47, 71).ScalarMul(big.NewInt(0))
	require.NoError(t, err)
	assert.True(t, got.IsInfinity())

	_, err = pt(t, 47, 71).ScalarMul(nil)
	assert.ErrorIs(t, err, ecc.ErrRange)
}

func TestScalarMulDoubling(t *testing.T) {
	p := pt(t, 170, 142)
	sum, err := p.Add(p)
	require.NoError(t, err)
	doubled, err := p.ScalarMul(big.NewInt(2))
	require.NoError(t, err)
	assert.True(t, sum.Equal(doubled))

	tripled, err := doubled.Add(p)
	require.NoError(t, err)
	three, err := p.ScalarMul(big.NewInt(3))
	require.NoError(t, err)
	assert.True(t, tripled.Equal(three))
}

func TestScalarMulNegative(t *testing.T) {
	p := pt(t, 47, 71)
	got, err := p.ScalarMul(big.NewInt(-1))
	require.NoError(t, err)
	assert.True(t, got.Equal(p.Neg()))

	minus5, err := p.ScalarMul(big.NewInt(-5))
	require.NoError(t, err)
	five, err := p.ScalarMul(big.NewInt(5))
	require.NoError(t, err)
	sum, err := minus5.Add(five)
	require.NoError(t, err)
	assert.True(t, sum.IsInfinity())
}

func TestScalarMulSuccessor(t *testing.T) {
	p := pt(t, 47, 71)
	for k := int64(0); k < 50; k++ {
		kp, err := p.ScalarMul(big.NewInt(k))
		require.NoError(t, err)
		lhs, err := kp.Add(p)
		require.NoError(t, err)
		rhs, err := p.ScalarMul(big.NewInt(k + 1))
		require.NoError(t, err)
		assert.True(t, lhs.Equal(rhs), "k=%d: %s", k, spew.Sdump(lhs, rhs))
	}
}

func TestGroupLaw(t *testing.T) {
	c := pt(t, 47, 71).Curve()
	points := append(allPoints(t, c, testPrime), c.Infinity())
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 300; i++ {
		p := points[rng.Intn(len(points))]
		q := points[rng.Intn(len(points))]
		r := points[rng.Intn(len(points))]

		pq, err := p.Add(q)
		require.NoError(t, err)
		qp, err := q.Add(p)
		require.NoError(t, err)
		assert.True(t, pq.Equal(qp), "P+Q != Q+P for %v, %v", p, q)

		pqr, err := pq.Add(r)
		require.NoError(t, err)
		qr, err := q.Add(r)
		require.NoError(t, err)
		pqr2, err := p.Add(qr)
		require.NoError(t, err)
		assert.True(t, pqr.Equal(pqr2), "(P+Q)+R != P+(Q+R) for %v, %v, %v", p, q, r)

		if !pq.IsInfinity() {
			assert.True(t, c.Contains(pq.X(), pq.Y()), "P+Q off curve: %v", pq)
		}
	}
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "Point(192, 105)_0_7 FieldElement(223)", pt(t, 192, 105).String())
	assert.Equal(t, "Point(infinity)_0_7 FieldElement(223)", pt(t, 192, 105).Curve().Infinity().String())
}

func TestPointEqual(t *testing.T) {
	p := pt(t, 192, 105)
	assert.True(t, p.Equal(pt(t, 192, 105)))
	assert.False(t, p.Equal(pt(t, 17, 56)))
	assert.False(t, p.Equal(p.Curve().Infinity()))
	assert.False(t, p.Equal(nil))
}
