package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Two white directional lights fixed to the camera, shining from opposite
// corners.
var LightDirs = [2]mgl32.Vec3{{1, 1, 1}, {-1, -1, -1}}

const (
	lightDiffuse  = 0.9
	lightSpecular = 0.4
	shininess     = 16
)

// NewLitShader compiles the lit program and loads the light uniforms.
func NewLitShader() (*Shader, error) {
	s, err := NewShader(LitVertShader, LitFragShader)
	if err != nil {
		return nil, err
	}
	s.Use()
	s.SetVector3("lightDir[0]", LightDirs[0])
	s.SetVector3("lightDir[1]", LightDirs[1])
	s.SetFloat("diffuse", lightDiffuse)
	s.SetFloat("specular", lightSpecular)
	s.SetFloat("shininess", shininess)
	return s, nil
}

// SetModelView loads modelView and the matching normal matrix.
func (s *Shader) SetModelView(mv mgl32.Mat4) {
	s.SetMatrix4("modelView", mv)
	s.SetMatrix3("normalMatrix", NormalMatrix(mv))
}

// NormalMatrix is the inverse transpose of mv's upper 3x3. A singular mv
// yields the plain upper 3x3.
func NormalMatrix(mv mgl32.Mat4) mgl32.Mat3 {
	m := mv.Mat3()
	if m.Det() == 0 {
		return m
	}
	return m.Inv().Transpose()
}
