package suppress

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// runKeyState snapshots an autorun value per hive: hive tag ("HKCU",
// "HKLM") to the prior string. A value can live in both hives with
// different strings; revert must put back every one of them exactly.
type runKeyState map[string]string

// encodeRunKeyState packs the per-hive snapshot into a State. Existed is
// false only when no hive held the value.
func encodeRunKeyState(st runKeyState) (State, error) {
	if len(st) == 0 {
		return State{Existed: false}, nil
	}
	data, err := json.Marshal(st)
	if err != nil {
		return State{}, errors.Wrap(err, "encoding run-key snapshot")
	}
	return State{Existed: true, Value: string(data)}, nil
}

// decodeRunKeyState unpacks a State captured by encodeRunKeyState.
func decodeRunKeyState(prior State) (runKeyState, error) {
	if !prior.Existed {
		return runKeyState{}, nil
	}
	var st runKeyState
	if err := json.Unmarshal([]byte(prior.Value), &st); err != nil {
		return nil, errors.Wrapf(err, "corrupt run-key snapshot %q", prior.Value)
	}
	return st, nil
}
