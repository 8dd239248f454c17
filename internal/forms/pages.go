package forms

// Default data for the density page (sample data from the ASH paper).
const paperData = "-0.38763\n0.80928\n1.5736\n-0.19156\n-1.2762\n0.012471\n" +
	"2.7392\n-0.14373\n1.5309\n-0.71012\n2.6883\n-0.97024\n" +
	"-0.18379\n0.39052\n0.89383\n-0.28856\n-0.82227\n-1.2461\n" +
	"2.8595\n0.50082"

// Default battery cycle-life data for the CE page.
const (
	batteryData = "87.29\n98.65\n99.25\n99.49\n99.63\n99.70\n99.76\n99.81\n" +
		"99.85\n99.87\n99.89\n99.91\n99.93\n99.94\n99.96"
	cycleData = "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n11\n12\n13\n14\n15"
)

// Default data for the example XY page.
const exampleData = "0.0\n1.0\n2.0\n3.0\n4.0\n5.0\n6.0\n7.0\n8.0\n9.0\n10.0"

const (
	dataLengthMsg  = "Data must be comma or line separated and have 2 to 100000 values"
	dataFloatMsg   = "All data points must be numbers (e.g., 3.14 or -42)"
	labelLengthMsg = "Longer than 50 characters"
	hexColorMsg    = "Not valid HTML rgb hex color (eg. #4C72B0)"
)

// AshForm collects input for the ASH density page.
type AshForm struct {
	Data      Field
	XLabel    Field
	Color     Field
	FillColor Field
	// RejectOutliers runs Peirce's Criterion on the data before density
	// estimation when set.
	RejectOutliers bool
}

// NewAshForm returns an AshForm populated with defaults.
func NewAshForm() *AshForm {
	f := &AshForm{
		Data: Field{
			Label:   "Data copied from a table or separated by commas (5 to 100000 points)",
			Default: paperData,
		},
		XLabel:    Field{Label: "X-axis Label"},
		Color:     Field{Label: "Line Color", Default: "#4C72B0"},
		FillColor: Field{Label: "Fill Color", Default: "#92B2E7"},
	}
	f.Reset()
	return f
}

// Reset restores every field to its default.
func (f *AshForm) Reset() {
	f.Data.Reset()
	f.XLabel.Reset()
	f.Color.Reset()
	f.FillColor.Reset()
	f.RejectOutliers = false
}

// Validate checks all fields, recording per-field errors. It returns
// true when the form is acceptable.
func (f *AshForm) Validate() bool {
	f.Data.Check(
		Required("Data is required"),
		DataLength(5, 100000, "Data must be comma or line separated and have 5 to 100000 values"),
		DataFloat(dataFloatMsg),
	)
	f.XLabel.Check(MaxLength(50, labelLengthMsg))
	f.Color.Check(Required("Line color is required"), HexColor(hexColorMsg))
	f.FillColor.Check(Required("Fill color is required"), HexColor(hexColorMsg))
	return f.Data.Valid() && f.XLabel.Valid() && f.Color.Valid() && f.FillColor.Valid()
}

// Values parses the validated data field.
func (f *AshForm) Values() ([]float64, error) {
	return ParseFloats(f.Data.Value)
}

// XYForm collects paired X/Y input shared by the CE and example pages.
type XYForm struct {
	XData  Field
	YData  Field
	XLabel Field
	YLabel Field
	Color  Field
}

// NewCEForm returns the coulombic-efficiency form with battery defaults.
func NewCEForm() *XYForm {
	f := &XYForm{
		XData:  Field{Label: "Cycle Number", Default: cycleData},
		YData:  Field{Label: "Battery CE", Default: batteryData},
		XLabel: Field{Label: "X-axis Label", Default: "Cycle Number"},
		YLabel: Field{Label: "Y-axis Label", Default: "Coulombic Efficiency (%)"},
		Color:  Field{Label: "Marker Color", Default: "#4C72B0"},
	}
	f.Reset()
	return f
}

// NewExampleForm returns the XY line-plot form.
func NewExampleForm() *XYForm {
	f := &XYForm{
		XData:  Field{Label: "X Data", Default: exampleData},
		YData:  Field{Label: "Y Data", Default: exampleData},
		XLabel: Field{Label: "X-axis Label"},
		YLabel: Field{Label: "Y-axis Label"},
		Color:  Field{Label: "Line Color", Default: "#4C72B0"},
	}
	f.Reset()
	return f
}

// Reset restores every field to its default.
func (f *XYForm) Reset() {
	f.XData.Reset()
	f.YData.Reset()
	f.XLabel.Reset()
	f.YLabel.Reset()
	f.Color.Reset()
}

// Validate checks all fields including the X/Y length pairing.
func (f *XYForm) Validate() bool {
	f.XData.Check(
		Required("X data is required"),
		DataLength(2, 100000, dataLengthMsg),
		DataFloat(dataFloatMsg),
	)
	f.YData.Check(
		Required("Y data is required"),
		DataLength(2, 100000, dataLengthMsg),
		DataFloat(dataFloatMsg),
	)
	if f.YData.Valid() {
		checkEqualLength(&f.YData, &f.XData, "X data")
	}
	f.XLabel.Check(MaxLength(50, labelLengthMsg))
	f.YLabel.Check(MaxLength(50, labelLengthMsg))
	f.Color.Check(Required("Color is required"), HexColor(hexColorMsg))
	return f.XData.Valid() && f.YData.Valid() && f.XLabel.Valid() &&
		f.YLabel.Valid() && f.Color.Valid()
}

// Values parses the validated X and Y data fields.
func (f *XYForm) Values() (xs, ys []float64, err error) {
	xs, err = ParseFloats(f.XData.Value)
	if err != nil {
		return nil, nil, err
	}
	ys, err = ParseFloats(f.YData.Value)
	if err != nil {
		return nil, nil, err
	}
	return xs, ys, nil
}
