package format

import (
	"fmt"
	"strconv"

	"tempus/internal/ast"
	"tempus/internal/source"
)

// InvalidFormatDescriptionError reports a malformed format description.
type InvalidFormatDescriptionError struct {
	Message string
	Index   int // byte index into the description
}

func (e *InvalidFormatDescriptionError) Error() string {
	return fmt.Sprintf("%s at byte index %d", e.Message, e.Index)
}

func describeErr(message string, span source.Span) *InvalidFormatDescriptionError {
	return &InvalidFormatDescriptionError{Message: message, Index: int(span.Start)}
}

// lower resolves the structural tree into semantic items, validating
// component names and modifiers.
func lower(items []ast.Item) ([]Item, error) {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		lowered, err := lowerItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, lowered)
	}
	return out, nil
}

func lowerItem(it ast.Item) (Item, error) {
	switch it.Kind {
	case ast.KindLiteral:
		return Literal(append([]byte(nil), it.Text...)), nil

	case ast.KindComponent:
		c, err := lowerComponent(it)
		if err != nil {
			return Item{}, err
		}
		return Comp(c), nil

	case ast.KindOptional:
		group, err := lower(it.Groups[0])
		if err != nil {
			return Item{}, err
		}
		return Optional(Compound(group...)), nil

	case ast.KindFirst:
		alts := make([]Item, 0, len(it.Groups))
		for _, g := range it.Groups {
			group, err := lower(g)
			if err != nil {
				return Item{}, err
			}
			alts = append(alts, Compound(group...))
		}
		return First(alts...), nil

	default:
		return Item{}, describeErr("invalid item", it.Span)
	}
}

func lowerComponent(it ast.Item) (Component, error) {
	build, ok := componentBuilders[string(it.Name)]
	if !ok {
		return nil, describeErr(fmt.Sprintf("invalid component name `%s`", it.Name), it.NameSpan)
	}
	return build(it)
}

// componentBuilders maps component names to their modifier-resolving
// constructors.
var componentBuilders = map[string]func(ast.Item) (Component, error){
	"day":            lowerDay,
	"month":          lowerMonth,
	"ordinal":        lowerOrdinal,
	"weekday":        lowerWeekday,
	"week_number":    lowerWeekNumber,
	"year":           lowerYear,
	"hour":           lowerHour,
	"minute":         lowerMinute,
	"period":         lowerPeriod,
	"second":         lowerSecond,
	"subsecond":      lowerSubsecond,
	"offset_hour":    lowerOffsetHour,
	"offset_minute":  lowerOffsetMinute,
	"offset_second":  lowerOffsetSecond,
	"ignore":         lowerIgnore,
	"unix_timestamp": lowerUnixTimestamp,
	"end":            lowerEnd,
}

func invalidModifier(m ast.Modifier) error {
	return describeErr(fmt.Sprintf("invalid modifier `%s:%s`", m.Key, m.Value), m.Span)
}

func lowerPadding(m ast.Modifier, out *Padding) error {
	switch string(m.Value) {
	case "zero":
		*out = PadZero
	case "space":
		*out = PadSpace
	case "none":
		*out = PadNone
	default:
		return invalidModifier(m)
	}
	return nil
}

func lowerBool(m ast.Modifier, out *bool) error {
	switch string(m.Value) {
	case "true":
		*out = true
	case "false":
		*out = false
	default:
		return invalidModifier(m)
	}
	return nil
}

func lowerDay(it ast.Item) (Component, error) {
	c := Day{}
	for _, m := range it.Modifiers {
		switch string(m.Key) {
		case "padding":
			if err := lowerPadding(m, &c.Padding); err != nil {
				return nil, err
			}
		default:
			return nil, invalidModifier(m)
		}
	}
	return c, nil
}

func lowerMonth(it ast.Item) (Component, error) {
	c := Month{Repr: MonthNumerical, CaseSensitive: true}
	for _, m := range it.Modifiers {
		switch string(m.Key) {
		case "padding":
			if err := lowerPadding(m, &c.Padding); err != nil {
				return nil, err
			}
		case "repr":
			switch string(m.Value) {
			case "numerical":
				c.Repr = MonthNumerical
			case "long":
				c.Repr = MonthLong
			case "short":
				c.Repr = MonthShort
			default:
				return nil, invalidModifier(m)
			}
		case "case_sensitive":
			if err := lowerBool(m, &c.CaseSensitive); err != nil {
				return nil, err
			}
		default:
			return nil, invalidModifier(m)
		}
	}
	return c, nil
}

func lowerOrdinal(it ast.Item) (Component, error) {
	c := Ordinal{}
	for _, m := range it.Modifiers {
		switch string(m.Key) {
		case "padding":
			if err := lowerPadding(m, &c.Padding); err != nil {
				return nil, err
			}
		default:
			return nil, invalidModifier(m)
		}
	}
	return c, nil
}

func lowerWeekday(it ast.Item) (Component, error) {
	c := Weekday{Repr: WeekdayLong, OneIndexed: true, CaseSensitive: true}
	for _, m := range it.Modifiers {
		switch string(m.Key) {
		case "repr":
			switch string(m.Value) {
			case "long":
				c.Repr = WeekdayLong
			case "short":
				c.Repr = WeekdayShort
			case "sunday":
				c.Repr = WeekdaySunday
			case "monday":
				c.Repr = WeekdayMonday
			default:
				return nil, invalidModifier(m)
			}
		case "one_indexed":
			if err := lowerBool(m, &c.OneIndexed); err != nil {
				return nil, err
			}
		case "case_sensitive":
			if err := lowerBool(m, &c.CaseSensitive); err != nil {
				return nil, err
			}
		default:
			return nil, invalidModifier(m)
		}
	}
	return c, nil
}

func lowerWeekNumber(it ast.Item) (Component, error) {
	c := WeekNumber{Repr: WeekNumberISO}
	for _, m := range it.Modifiers {
		switch string(m.Key) {
		case "padding":
			if err := lowerPadding(m, &c.Padding); err != nil {
				return nil, err
			}
		case "repr":
			switch string(m.Value) {
			case "iso":
				c.Repr = WeekNumberISO
			case "sunday":
				c.Repr = WeekNumberSunday
			case "monday":
				c.Repr = WeekNumberMonday
			default:
				return nil, invalidModifier(m)
			}
		default:
			return nil, invalidModifier(m)
		}
	}
	return c, nil
}

func lowerYear(it ast.Item) (Component, error) {
	c := Year{Repr: YearFull}
	for _, m := range it.Modifiers {
		switch string(m.Key) {
		case "padding":
			if err := lowerPadding(m, &c.Padding); err != nil {
				return nil, err
			}
		case "repr":
			switch string(m.Value) {
			case "full":
				c.Repr = YearFull
			case "century":
				c.Repr = YearCentury
			case "last_two":
				c.Repr = YearLastTwo
			default:
				return nil, invalidModifier(m)
			}
		case "base":
			switch string(m.Value) {
			case "calendar":
				c.ISOWeekBased = false
			case "iso_week":
				c.ISOWeekBased = true
			default:
				return nil, invalidModifier(m)
			}
		case "sign":
			switch string(m.Value) {
			case "automatic":
				c.SignMandatory = false
			case "mandatory":
				c.SignMandatory = true
			default:
				return nil, invalidModifier(m)
			}
		default:
			return nil, invalidModifier(m)
		}
	}
	return c, nil
}

func lowerHour(it ast.Item) (Component, error) {
	c := Hour{}
	for _, m := range it.Modifiers {
		switch string(m.Key) {
		case "padding":
			if err := lowerPadding(m, &c.Padding); err != nil {
				return nil, err
			}
		case "repr":
			switch string(m.Value) {
			case "24":
				c.Is12HourClock = false
			case "12":
				c.Is12HourClock = true
			default:
				return nil, invalidModifier(m)
			}
		default:
			return nil, invalidModifier(m)
		}
	}
	return c, nil
}

func lowerMinute(it ast.Item) (Component, error) {
	c := Minute{}
	for _, m := range it.Modifiers {
		switch string(m.Key) {
		case "padding":
			if err := lowerPadding(m, &c.Padding); err != nil {
				return nil, err
			}
		default:
			return nil, invalidModifier(m)
		}
	}
	return c, nil
}

func lowerPeriod(it ast.Item) (Component, error) {
	c := Period{Uppercase: true, CaseSensitive: true}
	for _, m := range it.Modifiers {
		switch string(m.Key) {
		case "case":
			switch string(m.Value) {
			case "upper":
				c.Uppercase = true
			case "lower":
				c.Uppercase = false
			default:
				return nil, invalidModifier(m)
			}
		case "case_sensitive":
			if err := lowerBool(m, &c.CaseSensitive); err != nil {
				return nil, err
			}
		default:
			return nil, invalidModifier(m)
		}
	}
	return c, nil
}

func lowerSecond(it ast.Item) (Component, error) {
	c := Second{}
	for _, m := range it.Modifiers {
		switch string(m.Key) {
		case "padding":
			if err := lowerPadding(m, &c.Padding); err != nil {
				return nil, err
			}
		default:
			return nil, invalidModifier(m)
		}
	}
	return c, nil
}

func lowerSubsecond(it ast.Item) (Component, error) {
	c := Subsecond{Digits: SubsecondOneOrMore}
	for _, m := range it.Modifiers {
		switch string(m.Key) {
		case "digits":
			v := string(m.Value)
			if v == "1+" {
				c.Digits = SubsecondOneOrMore
				continue
			}
			if len(v) == 1 && v[0] >= '1' && v[0] <= '9' {
				c.Digits = SubsecondDigits(v[0] - '0')
				continue
			}
			return nil, invalidModifier(m)
		default:
			return nil, invalidModifier(m)
		}
	}
	return c, nil
}

func lowerOffsetHour(it ast.Item) (Component, error) {
	c := OffsetHour{}
	for _, m := range it.Modifiers {
		switch string(m.Key) {
		case "padding":
			if err := lowerPadding(m, &c.Padding); err != nil {
				return nil, err
			}
		case "sign":
			switch string(m.Value) {
			case "automatic":
				c.SignMandatory = false
			case "mandatory":
				c.SignMandatory = true
			default:
				return nil, invalidModifier(m)
			}
		default:
			return nil, invalidModifier(m)
		}
	}
	return c, nil
}

func lowerOffsetMinute(it ast.Item) (Component, error) {
	c := OffsetMinute{}
	for _, m := range it.Modifiers {
		switch string(m.Key) {
		case "padding":
			if err := lowerPadding(m, &c.Padding); err != nil {
				return nil, err
			}
		default:
			return nil, invalidModifier(m)
		}
	}
	return c, nil
}

func lowerOffsetSecond(it ast.Item) (Component, error) {
	c := OffsetSecond{}
	for _, m := range it.Modifiers {
		switch string(m.Key) {
		case "padding":
			if err := lowerPadding(m, &c.Padding); err != nil {
				return nil, err
			}
		default:
			return nil, invalidModifier(m)
		}
	}
	return c, nil
}

func lowerIgnore(it ast.Item) (Component, error) {
	c := Ignore{}
	for _, m := range it.Modifiers {
		switch string(m.Key) {
		case "count":
			n, err := strconv.Atoi(string(m.Value))
			if err != nil || n <= 0 {
				return nil, invalidModifier(m)
			}
			c.Count = n
		default:
			return nil, invalidModifier(m)
		}
	}
	if c.Count == 0 {
		return nil, describeErr("missing required modifier `count` for component `ignore`", it.NameSpan)
	}
	return c, nil
}

func lowerUnixTimestamp(it ast.Item) (Component, error) {
	c := UnixTimestamp{Precision: UnixTimestampSecond}
	for _, m := range it.Modifiers {
		switch string(m.Key) {
		case "precision":
			switch string(m.Value) {
			case "second":
				c.Precision = UnixTimestampSecond
			case "millisecond":
				c.Precision = UnixTimestampMillisecond
			case "microsecond":
				c.Precision = UnixTimestampMicrosecond
			case "nanosecond":
				c.Precision = UnixTimestampNanosecond
			default:
				return nil, invalidModifier(m)
			}
		case "sign":
			switch string(m.Value) {
			case "automatic":
				c.SignMandatory = false
			case "mandatory":
				c.SignMandatory = true
			default:
				return nil, invalidModifier(m)
			}
		default:
			return nil, invalidModifier(m)
		}
	}
	return c, nil
}

func lowerEnd(it ast.Item) (Component, error) {
	if len(it.Modifiers) > 0 {
		return nil, invalidModifier(it.Modifiers[0])
	}
	return End{}, nil
}
