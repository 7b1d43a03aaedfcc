package chaos

// BifurcationPoint records the distinct orbit values observed at one
// parameter value after transients settle.
type BifurcationPoint struct {
	Param  float64
	Values []float64
}

// Bifurcation sweeps the control parameter across [rMin, rMax] and
// records settled orbit values at each step. Transient iterations are
// discarded before recording so fixed points and cycles show up as a
// small number of distinct values, while chaotic bands fill in.
func Bifurcation(seed, rMin, rMax float64, paramSteps, transient, record int) ([]BifurcationPoint, error) {
	if paramSteps <= 1 {
		paramSteps = 2
	}
	paramStep := (rMax - rMin) / float64(paramSteps-1)

	results := make([]BifurcationPoint, 0, paramSteps)
	for i := 0; i < paramSteps; i++ {
		r := rMin + float64(i)*paramStep

		m, err := NewMap(seed, r)
		if err != nil {
			return nil, err
		}

		for t := 0; t < transient; t++ {
			m.Step()
		}

		values := make([]float64, 0, record)
		seen := make(map[int]bool)
		for t := 0; t < record; t++ {
			v := m.Step()
			// Quantize to find distinct values
			key := int(v * 1000)
			if !seen[key] {
				seen[key] = true
				values = append(values, v)
			}
		}

		results = append(results, BifurcationPoint{Param: r, Values: values})
	}
	return results, nil
}

// BifurcationToASCII renders a bifurcation sweep as ASCII art, one
// column per parameter sample.
func BifurcationToASCII(data []BifurcationPoint, width, height int) string {
	if len(data) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	var minVal, maxVal float64
	foundFirst := false
	for _, p := range data {
		for _, v := range p.Values {
			if !foundFirst {
				minVal, maxVal = v, v
				foundFirst = true
				continue
			}
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
	}
	if !foundFirst {
		return ""
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for i, p := range data {
		col := i * width / len(data)
		if col >= width {
			col = width - 1
		}
		for _, v := range p.Values {
			row := height - 1 - int((v-minVal)/(maxVal-minVal)*float64(height-1))
			if row >= 0 && row < height {
				canvas[row][col] = '*'
			}
		}
	}

	result := ""
	for _, row := range canvas {
		result += string(row) + "\n"
	}
	return result
}
