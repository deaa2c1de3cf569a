package argumentum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldParseShortOptions(t *testing.T) {
	var value string

	parser := NewParser()
	parser.AddArgument(&value, "-v").SetNArgs(1)

	res, err := parser.ParseArgs([]string{"-v", "success"})
	assert.NoError(t, err)
	assert.True(t, res.Ok())
	assert.Equal(t, "success", value)
}

func TestShouldParseLongOptions(t *testing.T) {
	var value string

	parser := NewParser()
	parser.AddArgument(&value, "--value", "-v").SetNArgs(1)

	res, err := parser.ParseArgs([]string{"--value", "success"})
	assert.NoError(t, err)
	assert.True(t, res.Ok())
	assert.Equal(t, "success", value)
}

func TestShouldParseIntegerValues(t *testing.T) {
	var value int64

	parser := NewParser()
	parser.AddArgument(&value, "-v", "--value").SetNArgs(1)

	res, err := parser.ParseArgs([]string{"--value", "2314"})
	assert.NoError(t, err)
	assert.True(t, res.Ok())
	assert.Equal(t, int64(2314), value)
}

func TestShouldNotSetOptionValuesWithoutArguments(t *testing.T) {
	var value int64
	var unused string

	parser := NewParser()
	parser.AddArgument(&value, "-v", "--value").SetNArgs(1)
	parser.AddArgument(&unused, "--unused")

	_, err := parser.ParseArgs([]string{"--value", "2314"})
	assert.NoError(t, err)
	assert.Equal(t, int64(2314), value)
	assert.Equal(t, "", unused)
}

func TestShouldSubstituteFlagValueForOptionsWithoutArguments(t *testing.T) {
	var value int64
	var flag string

	parser := NewParser()
	parser.AddArgument(&value, "-v", "--value").SetNArgs(1)
	parser.AddArgument(&flag, "--flag")

	_, err := parser.ParseArgs([]string{"--value", "2314", "--flag", "notused"})
	assert.NoError(t, err)
	assert.Equal(t, int64(2314), value)
	// Options that take no argument are given the value "1" when present.
	assert.Equal(t, "1", flag)
}

func TestShouldSkipParsingOptionsAfterDashDash(t *testing.T) {
	var value int64
	var flag string

	parser := NewParser()
	parser.AddArgument(&value, "-v", "--value").SetNArgs(1)
	parser.AddArgument(&flag, "--skipped")

	res, err := parser.ParseArgs([]string{"--value", "2314", "--", "--skipped"})
	assert.NoError(t, err)
	assert.Equal(t, int64(2314), value)
	assert.Equal(t, "", flag)
	assert.Equal(t, []string{"--skipped"}, res.IgnoredArguments)
}

func TestShouldKeepIgnoringOptionsForTheRestOfTheStream(t *testing.T) {
	var value string

	parser := NewParser()
	parser.AddArgument(&value, "--value").SetNArgs(1)

	res, err := parser.ParseArgs([]string{"--value", "x", "--", "--value"})
	assert.NoError(t, err)
	assert.True(t, res.Ok())
	assert.Equal(t, "x", value)
	assert.Equal(t, []string{"--value"}, res.IgnoredArguments)
}

func TestShouldTreatRepeatedDashDashAsFreeArgument(t *testing.T) {
	parser := NewParser()

	res, err := parser.ParseArgs([]string{"--", "--", "tail"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"--", "tail"}, res.IgnoredArguments)
}

func TestShouldSupportShortOptionGroups(t *testing.T) {
	var flagA int64
	var flagB, flagC string
	var flagD int64

	parser := NewParser()
	parser.AddArgument(&flagA, "-a")
	parser.AddArgument(&flagB, "-b")
	parser.AddArgument(&flagC, "-c")
	parser.AddArgument(&flagD, "-d")

	_, err := parser.ParseArgs([]string{"-abd"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), flagA)
	assert.Equal(t, "1", flagB)
	assert.Equal(t, "", flagC)
	assert.Equal(t, int64(1), flagD)
}

func TestShortOptionGroupMatchesSequentialParsing(t *testing.T) {
	parse := func(args []string) [3]string {
		var a, b, d string
		parser := NewParser()
		parser.AddArgument(&a, "-a")
		parser.AddArgument(&b, "-b")
		parser.AddArgument(&d, "-d")
		res, err := parser.ParseArgs(args)
		assert.NoError(t, err)
		assert.True(t, res.Ok())
		return [3]string{a, b, d}
	}

	assert.Equal(t, parse([]string{"-a", "-b", "-d"}), parse([]string{"-abd"}))
}

func TestShouldReadArgumentForLastOptionInGroup(t *testing.T) {
	var flagA int64
	var flagB, flagC string
	var flagD int64

	parser := NewParser()
	parser.AddArgument(&flagA, "-a")
	parser.AddArgument(&flagB, "-b")
	parser.AddArgument(&flagC, "-c")
	parser.AddArgument(&flagD, "-d").SetNArgs(1)

	_, err := parser.ParseArgs([]string{"-abd", "4213"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), flagA)
	assert.Equal(t, "1", flagB)
	assert.Equal(t, "", flagC)
	assert.Equal(t, int64(4213), flagD)
}

func TestBundledFlagsFollowedByOptionArgument(t *testing.T) {
	var a string
	var b string
	var c string

	parser := NewParser()
	parser.AddArgument(&a, "-a")
	parser.AddArgument(&b, "-b").SetFlagValue("on")
	parser.AddArgument(&c, "-c").SetNArgs(1)

	res, err := parser.ParseArgs([]string{"-abc", "42"})
	assert.NoError(t, err)
	assert.True(t, res.Ok())
	assert.Equal(t, "1", a)
	assert.Equal(t, "on", b)
	assert.Equal(t, "42", c)
}

func TestShouldReportErrorForMissingArgument(t *testing.T) {
	var flagA int64
	var flagB string

	parser := NewParser()
	parser.AddArgument(&flagA, "-a").SetNArgs(1)
	parser.AddArgument(&flagB, "-b")

	res, err := parser.ParseArgs([]string{"-a", "-b", "freearg"})
	assert.NoError(t, err)
	assert.Equal(t, []ParseError{{Option: "a", Code: MissingArgument}}, res.Errors)
	assert.Equal(t, []string{"freearg"}, res.IgnoredArguments)
}

func TestExactArityIsSatisfiedByExactCount(t *testing.T) {
	var pair []string

	parser := NewParser()
	parser.AddArgument(&pair, "-p").SetNArgs(2)

	res, err := parser.ParseArgs([]string{"-p", "a", "b"})
	assert.NoError(t, err)
	assert.True(t, res.Ok())
	assert.Equal(t, []string{"a", "b"}, pair)
}

func TestExactArityReportsOneMissingArgument(t *testing.T) {
	var pair []string

	parser := NewParser()
	parser.AddArgument(&pair, "-p").SetNArgs(2)

	res, err := parser.ParseArgs([]string{"-p", "a"})
	assert.NoError(t, err)
	assert.Equal(t, []ParseError{{Option: "p", Code: MissingArgument}}, res.Errors)
}

func TestShouldReportBadConversionError(t *testing.T) {
	var flagA int64

	parser := NewParser()
	parser.AddArgument(&flagA, "-a").SetNArgs(1)

	res, err := parser.ParseArgs([]string{"-a", "wrong"})
	assert.NoError(t, err)
	assert.Equal(t, []ParseError{{Option: "a", Code: ConversionError}}, res.Errors)
}

func TestShouldReportUnknownOptionError(t *testing.T) {
	var flagA int64

	parser := NewParser()
	parser.AddArgument(&flagA, "-a").SetNArgs(1)

	res, err := parser.ParseArgs([]string{"-a", "2135", "--unknown"})
	assert.NoError(t, err)
	assert.Equal(t, []ParseError{{Option: "unknown", Code: UnknownOption}}, res.Errors)
}

func TestShouldReportMissingRequiredOptionError(t *testing.T) {
	var flagA, flagB int64

	parser := NewParser()
	parser.AddArgument(&flagA, "-a").SetNArgs(1)
	parser.AddArgument(&flagB, "-b").SetRequired(true)

	res, err := parser.ParseArgs([]string{"-a", "2135"})
	assert.NoError(t, err)
	assert.Equal(t, []ParseError{{Option: "b", Code: MissingOption}}, res.Errors)
}

func TestShouldSupportFlagValues(t *testing.T) {
	var flag string

	parser := NewParser()
	parser.AddArgument(&flag, "-a").SetFlagValue("from-a")
	parser.AddArgument(&flag, "-b").SetFlagValue("from-b")

	_, err := parser.ParseArgs([]string{"-a", "-b"})
	assert.NoError(t, err)
	assert.Equal(t, "from-b", flag)

	_, err = parser.ParseArgs([]string{"-b", "-a"})
	assert.NoError(t, err)
	assert.Equal(t, "from-a", flag)
}

func TestShouldSupportFloatingPointValues(t *testing.T) {
	var value float64

	parser := NewParser()
	parser.AddArgument(&value, "-a").SetNArgs(1)

	_, err := parser.ParseArgs([]string{"-a", "23.5"})
	assert.NoError(t, err)
	assert.InDelta(t, 23.5, value, 1e-9)
}

func TestShouldSupportRawValueTypes(t *testing.T) {
	var strvalue string
	var intvalue int64
	var floatvalue float64

	parser := NewParser()
	parser.AddArgument(&strvalue, "--str").SetNArgs(1)
	parser.AddArgument(&intvalue, "--int").SetNArgs(1)
	parser.AddArgument(&floatvalue, "--float").SetNArgs(1)

	_, err := parser.ParseArgs([]string{"--str", "string", "--int", "2134", "--float", "32.4"})
	assert.NoError(t, err)
	assert.Equal(t, "string", strvalue)
	assert.Equal(t, int64(2134), intvalue)
	assert.InDelta(t, 32.4, floatvalue, 1e-9)
}

func TestShouldAcceptOptionNamesInAddArgument(t *testing.T) {
	var strvalue string

	parser := NewParser()
	parser.AddArgument(&strvalue, "-s", "--string").SetNArgs(1)

	res, err := parser.ParseArgs([]string{"-s", "short"})
	assert.NoError(t, err)
	assert.Empty(t, res.Errors)
	assert.Equal(t, "short", strvalue)

	res, err = parser.ParseArgs([]string{"--string", "long"})
	assert.NoError(t, err)
	assert.Empty(t, res.Errors)
	assert.Equal(t, "long", strvalue)
}

func TestShouldNotAcceptInvalidShortOptions(t *testing.T) {
	var strvalue string

	parser := NewParser()
	parser.AddArgument(&strvalue, "-s", "--string").SetNArgs(1)
	parser.AddArgument(&strvalue, "--l").SetNArgs(1)

	assert.Panics(t, func() {
		parser.AddArgument(&strvalue, "-long")
	})

	res, err := parser.ParseArgs([]string{"--l", "onecharlong"})
	assert.NoError(t, err)
	assert.Empty(t, res.Errors)
	assert.Equal(t, "onecharlong", strvalue)
}

func TestShouldNotAcceptOptionsWithoutName(t *testing.T) {
	var strvalue string

	parser := NewParser()
	assert.Panics(t, func() { parser.AddArgument(&strvalue, "-") })
	assert.Panics(t, func() { parser.AddArgument(&strvalue, "--") })
	assert.Panics(t, func() { parser.AddArgument(&strvalue, "") })
	assert.Panics(t, func() { parser.AddArgument(&strvalue, "a b") })
	assert.Panics(t, func() { parser.AddArgument(&strvalue, "file", "-f") })
}

func TestShouldNotAcceptConflictingAritySettings(t *testing.T) {
	var value string

	parser := NewParser()
	assert.Panics(t, func() {
		parser.AddArgument(&value, "-v").SetNArgs(1).SetMaxArgs(3)
	})
}

func TestShouldSupportVectorOptions(t *testing.T) {
	var strings []string
	var longs []int64
	var floats []float64

	parser := NewParser()
	parser.AddArgument(&strings, "-s").SetNArgs(1)
	parser.AddArgument(&longs, "-l").SetNArgs(1)
	parser.AddArgument(&floats, "-f").SetNArgs(1)

	_, err := parser.ParseArgs([]string{"-s", "string", "-f", "12.43", "-l", "576", "-l", "981"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"string"}, strings)
	assert.Equal(t, []int64{576, 981}, longs)
	assert.InDelta(t, 12.43, floats[0], 1e-9)
}

func TestShouldStorePositionalArgumentsInValues(t *testing.T) {
	var texts []string

	parser := NewParser()
	parser.AddArgument(&texts, "text")

	res, err := parser.ParseArgs([]string{"one", "two", "three"})
	assert.NoError(t, err)
	assert.True(t, res.Ok())
	assert.Equal(t, []string{"one", "two", "three"}, texts)
}

func TestPositionalSlotsAdvancePastSaturatedSlots(t *testing.T) {
	var first string
	var rest []string

	parser := NewParser()
	parser.AddArgument(&first, "first")
	parser.AddArgument(&rest, "rest")

	res, err := parser.ParseArgs([]string{"one", "two", "three"})
	assert.NoError(t, err)
	assert.True(t, res.Ok())
	assert.Equal(t, "one", first)
	assert.Equal(t, []string{"two", "three"}, rest)
}

// The active option has first refusal of free tokens; a saturated
// positional routes the remainder to IgnoredArguments, regardless of where
// the interleaved flag sits.
func TestFreeTokensFillPositionalsInEncounterOrder(t *testing.T) {
	var pair []string
	var flag string

	parser := NewParser()
	parser.AddArgument(&pair, "pair").SetNArgs(2)
	parser.AddArgument(&flag, "-o")

	res, err := parser.ParseArgs([]string{"x", "-o", "y", "z"})
	assert.NoError(t, err)
	assert.Empty(t, res.Errors)
	assert.Equal(t, []string{"x", "y"}, pair)
	assert.Equal(t, "1", flag)
	assert.Equal(t, []string{"z"}, res.IgnoredArguments)
}

func TestShouldReportMissingPositionalArguments(t *testing.T) {
	var pair []string

	parser := NewParser()
	parser.AddArgument(&pair, "pair").SetNArgs(2)

	res, err := parser.ParseArgs([]string{"only"})
	assert.NoError(t, err)
	assert.Equal(t, []ParseError{{Option: "pair", Code: MissingArgument}}, res.Errors)
}

func TestShouldParseInlineValues(t *testing.T) {
	var value string

	parser := NewParser()
	parser.AddArgument(&value, "--value").SetNArgs(1)

	res, err := parser.ParseArgs([]string{"--value=inline"})
	assert.NoError(t, err)
	assert.True(t, res.Ok())
	assert.Equal(t, "inline", value)
}

func TestFreeTokenAfterSaturatingInlineValueGoesToPositionals(t *testing.T) {
	var value string
	var pos string

	parser := NewParser()
	parser.AddArgument(&value, "--value").SetNArgs(1)
	parser.AddArgument(&pos, "pos")

	res, err := parser.ParseArgs([]string{"--value=inline", "free"})
	assert.NoError(t, err)
	assert.True(t, res.Ok())
	assert.Equal(t, "inline", value)
	assert.Equal(t, "free", pos)
}

func TestShouldRejectInlineValueOnFlag(t *testing.T) {
	var flag string

	parser := NewParser()
	parser.AddArgument(&flag, "--flag")

	res, err := parser.ParseArgs([]string{"--flag=oops"})
	assert.NoError(t, err)
	assert.Equal(t, []ParseError{{Option: "flag", Code: FlagParameter}}, res.Errors)
	// The flag itself is still set.
	assert.Equal(t, "1", flag)
}

func TestShouldSupportUnboundedOptions(t *testing.T) {
	var values []string

	parser := NewParser()
	parser.AddArgument(&values, "--many").SetMinArgs(1)

	res, err := parser.ParseArgs([]string{"--many", "a", "b", "c"})
	assert.NoError(t, err)
	assert.True(t, res.Ok())
	assert.Equal(t, []string{"a", "b", "c"}, values)
}

func TestRepeatedParsingIsIdempotent(t *testing.T) {
	var value string
	var tail []string

	parser := NewParser()
	parser.AddArgument(&value, "--value").SetNArgs(1)
	parser.AddArgument(&tail, "tail")

	args := []string{"--value", "v", "one", "two", "stray", "--bogus"}
	first, err := parser.ParseArgs(args)
	assert.NoError(t, err)
	firstValue := value
	firstTail := append([]string(nil), tail...)

	second, err := parser.ParseArgs(args)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, firstValue, value)
	assert.Equal(t, firstTail, tail)
}
