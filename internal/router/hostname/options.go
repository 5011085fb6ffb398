package hostname

import (
	"github.com/mitchellh/mapstructure"
	"github.com/simman/go-hostroute/internal/router"
)

// FromOptions builds a route from a configuration map.
//
// Recognised keys: "hosts" (list of strings), "host" (string, used only when
// "hosts" is absent) and the optional "defaults" (map).
func FromOptions(options map[string]any) (*Route, error) {
	rawHosts, hasHosts := options["hosts"]
	rawHost, hasHost := options["host"]

	if !hasHosts && !hasHost {
		return nil, &ConfigurationError{
			Key:    "host",
			Reason: `one of config keys "host" or "hosts" is required`,
		}
	}

	var hosts []string
	if hasHosts {
		if err := decode(rawHosts, &hosts); err != nil {
			return nil, &ConfigurationError{
				Key:    "hosts",
				Reason: `the config key "hosts" must be an array`,
				Err:    err,
			}
		}
	} else {
		host, ok := rawHost.(string)
		if !ok {
			return nil, &ConfigurationError{
				Key:    "host",
				Reason: `the config key "host" must be a string`,
			}
		}
		hosts = []string{host}
	}

	defaults := router.Params{}
	if rawDefaults, ok := options["defaults"]; ok {
		if err := decode(rawDefaults, &defaults); err != nil {
			return nil, &ConfigurationError{
				Key:    "defaults",
				Reason: `the optional config key "defaults" must be an array, if available`,
				Err:    err,
			}
		}
	}

	return New(hosts, defaults), nil
}

// Factory is the router.Factory for hostname routes.
func Factory(options map[string]any) (router.Route, error) {
	r, err := FromOptions(options)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// decode is a strict mapstructure decode; nil input is an error.
func decode(input, result any) error {
	if input == nil {
		return errNilValue
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      result,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}
