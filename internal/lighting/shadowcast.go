package lighting

import "mengya/internal/gamemap"

// octant transform matrices.
// For each octant, a (dx, dy) sweep pair maps to a world offset via:
//   worldX = cx + dx*xx + dy*xy
//   worldY = cy + dx*yx + dy*yy
// where dx sweeps horizontally within the row and dy is the fixed row index.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// visitFunc receives each reached cell and its squared distance from the
// origin. Cells on octant borders may be visited twice.
type visitFunc func(x, y, distSq int)

// shadowcast calls visit for every cell within radius of (cx, cy) that has a
// clear line from it, using recursive shadowcasting. Opaque cells that stop
// the light are visited too, so walls facing a lamp are lit.
func shadowcast(gmap *gamemap.GameMap, cx, cy, radius int, visit visitFunc) {
	if gmap.InBounds(cx, cy) {
		visit(cx, cy, 0)
	}
	for _, m := range octants {
		castLight(gmap, cx, cy, 1, 1.0, 0.0, radius, m[0], m[1], m[2], m[3], visit)
	}
}

// castLight scans one octant.
//   - j is the current row (distance from origin along the main axis)
//   - dy = -j is fixed for the entire inner sweep
//   - dx sweeps from -j to 0 within the row
//   - lSlope = (dx - 0.5) / (dy + 0.5)   rSlope = (dx + 0.5) / (dy - 0.5)
func castLight(gmap *gamemap.GameMap, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, visit visitFunc) {
	if start < end {
		return
	}
	radiusSq := radius * radius
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := cx + dx*xx + dy*xy
			wy := cy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if d := dx*dx + dy*dy; d < radiusSq && gmap.InBounds(wx, wy) {
				visit(wx, wy, d)
			}

			opaque := !gmap.IsTransparent(wx, wy)

			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < radius {
				blocked = true
				castLight(gmap, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, visit)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
