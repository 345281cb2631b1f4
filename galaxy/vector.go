package galaxy

import (
	"fmt"
	"math"
)

// Vector3 is a point or direction in galaxy space.
type Vector3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v * k.
func (v Vector3) Scale(k float64) Vector3 { return Vector3{v.X * k, v.Y * k, v.Z * k} }

// LengthSqr returns |v|².
func (v Vector3) LengthSqr() float64 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Length returns |v|.
func (v Vector3) Length() float64 { return math.Sqrt(v.LengthSqr()) }

// DistanceSqr returns |v - o|².
func (v Vector3) DistanceSqr(o Vector3) float64 { return v.Sub(o).LengthSqr() }

// Distance returns the Euclidean distance between v and o.
func (v Vector3) Distance(o Vector3) float64 { return math.Sqrt(v.DistanceSqr(o)) }

func (v Vector3) String() string { return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z) }
