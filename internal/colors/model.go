package colors

// Model is the single authoritative working colour of an editor session.
//
// It caches the colour in both RGB and HSB form. Whichever representation is
// set is stored as given (after clamping) and the other is recomputed from it,
// so the two never drift apart.
//
// Model is not safe for concurrent use; the owning session serialises access.
type Model struct {
	rgb RGB
	hsb HSB

	onChange func(RGB)
}

// NewModel returns a model holding opaque black, the editor's initial colour.
func NewModel() *Model {
	return &Model{}
}

// OnChange registers a preview callback invoked after every colour change.
// Passing nil removes it.
func (m *Model) OnChange(fn func(RGB)) {
	m.onChange = fn
}

// SetHSB sets the colour from HSB components and returns the derived RGB.
// Hue wraps modulo 360; saturation and brightness are clamped to 0-100.
func (m *Model) SetHSB(h, s, b int) RGB {
	m.hsb = HSB{H: h, S: s, B: b}.normalize()
	m.rgb = HSBToRGB(m.hsb)
	m.changed()
	return m.rgb
}

// SetRGB sets the colour from RGB channels (each clamped to 0-255) and
// returns the derived HSB.
func (m *Model) SetRGB(r, g, b int) HSB {
	return m.Set(RGBFromInts(r, g, b))
}

// Set is SetRGB for an existing RGB value.
func (m *Model) Set(c RGB) HSB {
	m.rgb = c
	m.hsb = RGBToHSB(c)
	m.changed()
	return m.hsb
}

// RGB returns the current colour's RGB form.
func (m *Model) RGB() RGB { return m.rgb }

// HSB returns the current colour's HSB form.
func (m *Model) HSB() HSB { return m.hsb }

// String returns the current colour as "rgb(r, g, b)".
func (m *Model) String() string { return m.rgb.String() }

func (m *Model) changed() {
	if m.onChange != nil {
		m.onChange(m.rgb)
	}
}
