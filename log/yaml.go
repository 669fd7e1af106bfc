package log

// yaml.v2 does not use encoding.TextUnmarshaler, the enum types need
// explicit yaml unmarshalling

func (x *Level) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}

	level, err := ParseLevel(name)
	if err != nil {
		return err
	}

	*x = level

	return nil
}

func (x *FormatType) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}

	format, err := ParseFormatType(name)
	if err != nil {
		return err
	}

	*x = format

	return nil
}
