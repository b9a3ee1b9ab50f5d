package cli

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// print writes v in the selected output format. YAML goes through JSON first so both formats
// use the platform's field names.
func (a *App) print(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	if *a.output != "yaml" {
		_, err = fmt.Fprintln(a.out, string(data))
		return err
	}

	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	enc := yaml.NewEncoder(a.out)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return fmt.Errorf("encode yaml output: %w", err)
	}
	return enc.Close()
}

func (a *App) say(format string, args ...any) error {
	_, err := fmt.Fprintf(a.out, format+"\n", args...)
	return err
}
