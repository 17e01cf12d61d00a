package league

import "fmt"

// League is a supported competition and the standings page that backs it.
type League struct {
	Key         string
	Aliases     []string
	SourceURL   string
	DisplayName string
}

func (l League) Validate() error {
	if l.Key == "" {
		return fmt.Errorf("league key is required")
	}
	if l.DisplayName == "" {
		return fmt.Errorf("league display name is required")
	}
	if l.SourceURL == "" {
		return fmt.Errorf("league source url is required")
	}
	if len(l.Aliases) == 0 {
		return fmt.Errorf("league %s needs at least one alias", l.Key)
	}

	return nil
}

// clone returns l with its own copy of Aliases.
func (l League) clone() League {
	l.Aliases = append([]string(nil), l.Aliases...)
	return l
}
