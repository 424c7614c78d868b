package puzzle

// Border is one of the four sides of a piece. The numeric values double as
// the direction axis of the compatibility and best-buddy tensors.
type Border uint8

const (
	Top Border = iota
	Right
	Bottom
	Left
)

// NumBorders is the length of the direction axis.
const NumBorders = 4

// Borders lists the four sides in tensor-axis order.
var Borders = [NumBorders]Border{Top, Right, Bottom, Left}

// Opposite returns the side that physically touches b on an adjacent piece.
func (b Border) Opposite() Border {
	return (b + 2) % NumBorders
}

func (b Border) String() string {
	switch b {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return "none"
}
