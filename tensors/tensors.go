package tensors

// Tensors2 is a 2D field of symmetric positive semi-definite 2×2 tensors.
type Tensors2 interface {
	// GetTensor fills d[0:3] with {d11, d12, d22} for sample (i2, i1).
	GetTensor(i2, i1 int, d []float32)
}

// Tensors3 is a 3D field of symmetric positive semi-definite 3×3 tensors.
type Tensors3 interface {
	// GetTensor fills d[0:6] with {d11, d12, d13, d22, d23, d33}
	// for sample (i3, i2, i1).
	GetTensor(i3, i2, i1 int, d []float32)
}

// IdentityTensors2 yields the 2×2 identity tensor at every sample,
// turning anisotropic smoothing into plain isotropic smoothing.
type IdentityTensors2 struct{}

// GetTensor implements Tensors2.
func (IdentityTensors2) GetTensor(_, _ int, d []float32) {
	d[0], d[1], d[2] = 1, 0, 1
}

// IdentityTensors3 yields the 3×3 identity tensor at every sample.
type IdentityTensors3 struct{}

// GetTensor implements Tensors3.
func (IdentityTensors3) GetTensor(_, _, _ int, d []float32) {
	d[0], d[1], d[2], d[3], d[4], d[5] = 1, 0, 0, 1, 0, 1
}

// ConstantTensors2 yields one fixed 2×2 tensor at every sample.
// The caller is responsible for supplying an SPD tuple.
type ConstantTensors2 struct {
	d11, d12, d22 float32
}

// NewConstantTensors2 builds a constant 2D tensor field from the three
// distinct elements of a symmetric 2×2 tensor.
func NewConstantTensors2(d11, d12, d22 float32) *ConstantTensors2 {
	return &ConstantTensors2{d11: d11, d12: d12, d22: d22}
}

// GetTensor implements Tensors2.
func (t *ConstantTensors2) GetTensor(_, _ int, d []float32) {
	d[0], d[1], d[2] = t.d11, t.d12, t.d22
}

// ConstantTensors3 yields one fixed 3×3 tensor at every sample.
// The caller is responsible for supplying an SPD tuple.
type ConstantTensors3 struct {
	d11, d12, d13, d22, d23, d33 float32
}

// NewConstantTensors3 builds a constant 3D tensor field from the six
// distinct elements of a symmetric 3×3 tensor.
func NewConstantTensors3(d11, d12, d13, d22, d23, d33 float32) *ConstantTensors3 {
	return &ConstantTensors3{d11: d11, d12: d12, d13: d13, d22: d22, d23: d23, d33: d33}
}

// GetTensor implements Tensors3.
func (t *ConstantTensors3) GetTensor(_, _, _ int, d []float32) {
	d[0], d[1], d[2], d[3], d[4], d[5] = t.d11, t.d12, t.d13, t.d22, t.d23, t.d33
}
