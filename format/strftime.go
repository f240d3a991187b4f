package format

import "fmt"

// ParseStrftime compiles a C-style conversion specification into the same
// item tree the bracket language produces. Unknown conversions and a
// trailing `%` are errors. The E and O locale modifiers are accepted and
// behave like the unmodified conversion.
func ParseStrftime(description string) ([]Item, error) {
	input := []byte(description)
	var items []Item

	i := 0
	for i < len(input) {
		if input[i] != '%' {
			start := i
			for i < len(input) && input[i] != '%' {
				i++
			}
			items = append(items, Literal(append([]byte(nil), input[start:i]...)))
			continue
		}

		directiveIndex := i
		i++ // consume '%'
		if i < len(input) && (input[i] == 'E' || input[i] == 'O') {
			i++
		}
		if i >= len(input) {
			return nil, &InvalidFormatDescriptionError{Message: "trailing `%`", Index: directiveIndex}
		}

		conv := input[i]
		i++
		expanded, err := strftimeConversion(conv, directiveIndex)
		if err != nil {
			return nil, err
		}
		items = append(items, expanded...)
	}
	return items, nil
}

func strftimeConversion(conv byte, index int) ([]Item, error) {
	one := func(c Component) []Item { return []Item{Comp(c)} }

	switch conv {
	case 'a':
		return one(Weekday{Repr: WeekdayShort, CaseSensitive: true}), nil
	case 'A':
		return one(Weekday{Repr: WeekdayLong, CaseSensitive: true}), nil
	case 'b', 'h':
		return one(Month{Repr: MonthShort, CaseSensitive: true}), nil
	case 'B':
		return one(Month{Repr: MonthLong, CaseSensitive: true}), nil
	case 'c':
		// equivalent to "%a %b %e %H:%M:%S %Y"
		return joinItems(
			strftimeMust('a'), lit(" "), strftimeMust('b'), lit(" "),
			strftimeMust('e'), lit(" "), strftimeMust('T'), lit(" "),
			strftimeMust('Y'),
		), nil
	case 'C':
		return one(Year{Repr: YearCentury}), nil
	case 'd':
		return one(Day{}), nil
	case 'D':
		return joinItems(strftimeMust('m'), lit("/"), strftimeMust('d'), lit("/"), strftimeMust('y')), nil
	case 'e':
		return one(Day{Padding: PadSpace}), nil
	case 'F':
		return joinItems(strftimeMust('Y'), lit("-"), strftimeMust('m'), lit("-"), strftimeMust('d')), nil
	case 'g':
		return one(Year{Repr: YearLastTwo, ISOWeekBased: true}), nil
	case 'G':
		return one(Year{ISOWeekBased: true}), nil
	case 'H':
		return one(Hour{}), nil
	case 'I':
		return one(Hour{Is12HourClock: true}), nil
	case 'j':
		return one(Ordinal{}), nil
	case 'k':
		return one(Hour{Padding: PadSpace}), nil
	case 'l':
		return one(Hour{Padding: PadSpace, Is12HourClock: true}), nil
	case 'm':
		return one(Month{Repr: MonthNumerical, CaseSensitive: true}), nil
	case 'M':
		return one(Minute{}), nil
	case 'n':
		return []Item{LiteralString("\n")}, nil
	case 'p':
		return one(Period{Uppercase: true, CaseSensitive: true}), nil
	case 'P':
		return one(Period{Uppercase: false, CaseSensitive: true}), nil
	case 'r':
		return joinItems(strftimeMust('I'), lit(":"), strftimeMust('M'), lit(":"),
			strftimeMust('S'), lit(" "), strftimeMust('p')), nil
	case 'R':
		return joinItems(strftimeMust('H'), lit(":"), strftimeMust('M')), nil
	case 's':
		return one(UnixTimestamp{}), nil
	case 'S':
		return one(Second{}), nil
	case 't':
		return []Item{LiteralString("\t")}, nil
	case 'T', 'X':
		return joinItems(strftimeMust('H'), lit(":"), strftimeMust('M'), lit(":"), strftimeMust('S')), nil
	case 'u':
		return one(Weekday{Repr: WeekdayMonday, OneIndexed: true, CaseSensitive: true}), nil
	case 'U':
		return one(WeekNumber{Repr: WeekNumberSunday}), nil
	case 'V':
		return one(WeekNumber{Repr: WeekNumberISO}), nil
	case 'w':
		return one(Weekday{Repr: WeekdaySunday, CaseSensitive: true}), nil
	case 'W':
		return one(WeekNumber{Repr: WeekNumberMonday}), nil
	case 'x':
		return joinItems(strftimeMust('m'), lit("/"), strftimeMust('d'), lit("/"), strftimeMust('y')), nil
	case 'y':
		return one(Year{Repr: YearLastTwo}), nil
	case 'Y':
		return one(Year{}), nil
	case 'z':
		return []Item{
			Comp(OffsetHour{SignMandatory: true}),
			Comp(OffsetMinute{}),
		}, nil
	case '%':
		return []Item{LiteralString("%")}, nil
	default:
		return nil, &InvalidFormatDescriptionError{
			Message: fmt.Sprintf("unsupported conversion `%%%c`", conv),
			Index:   index,
		}
	}
}

// strftimeMust expands a conversion known to be valid. It is only used for
// the compound conversions above.
func strftimeMust(conv byte) []Item {
	items, err := strftimeConversion(conv, 0)
	if err != nil {
		panic(err)
	}
	return items
}

func lit(s string) []Item {
	return []Item{LiteralString(s)}
}

func joinItems(groups ...[]Item) []Item {
	var out []Item
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
