package telemetry

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/gpu-tools/gpumon/internal/errors"
)

// XML projection of `nvidia-smi -q -x` output. Only the fields the
// dashboard needs are mapped; everything else is ignored.
type smiLog struct {
	XMLName xml.Name `xml:"nvidia_smi_log"`
	GPUs    []smiGPU `xml:"gpu"`
}

type smiGPU struct {
	ProductName string       `xml:"product_name"`
	MinorNumber string       `xml:"minor_number"`
	FBMemory    smiMemory    `xml:"fb_memory_usage"`
	Processes   smiProcesses `xml:"processes"`
}

type smiMemory struct {
	Total string `xml:"total"`
	Used  string `xml:"used"`
	Free  string `xml:"free"`
}

type smiProcesses struct {
	Infos []smiProcess `xml:"process_info"`
}

type smiProcess struct {
	PID        string `xml:"pid"`
	UsedMemory string `xml:"used_memory"`
}

// Parse converts raw nvidia-smi XML into device records, preserving
// document order for devices and processes.
//
// Nil or empty input yields an empty result and no error: a host that
// returned nothing is treated as having no devices. Any malformed memory
// field fails the whole host's poll with a PARSE error; a partial record
// would silently under-report usage.
func Parse(raw []byte) ([]DeviceRecord, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var log smiLog
	if err := xml.Unmarshal(raw, &log); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrParse,
			"Couldn't parse nvidia-smi XML",
			"Check 'nvidia-smi -q -x' runs cleanly on the host")
	}

	devices := make([]DeviceRecord, 0, len(log.GPUs))
	for _, gpu := range log.GPUs {
		rec := DeviceRecord{
			Index: strings.TrimSpace(gpu.MinorNumber),
			Name:  strings.TrimSpace(gpu.ProductName),
		}

		var err error
		if rec.MemoryTotal, err = parseMiB(gpu.FBMemory.Total); err != nil {
			return nil, parseFieldError("total memory", rec.Index, err)
		}
		if rec.MemoryUsed, err = parseMiB(gpu.FBMemory.Used); err != nil {
			return nil, parseFieldError("used memory", rec.Index, err)
		}
		if rec.MemoryFree, err = parseMiB(gpu.FBMemory.Free); err != nil {
			return nil, parseFieldError("free memory", rec.Index, err)
		}

		for _, proc := range gpu.Processes.Infos {
			mem, err := parseMiB(proc.UsedMemory)
			if err != nil {
				return nil, parseFieldError("process memory", rec.Index, err)
			}
			rec.Processes = append(rec.Processes, ProcessUsage{
				PID:       strings.TrimSpace(proc.PID),
				MemoryMiB: mem,
			})
		}

		devices = append(devices, rec)
	}

	return devices, nil
}

// parseMiB extracts the leading integer from a field like "2048 MiB".
func parseMiB(field string) (int64, error) {
	fields := strings.Fields(field)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty memory field")
	}
	n, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("non-integer memory value %q", fields[0])
	}
	return n, nil
}

func parseFieldError(what, index string, cause error) error {
	return errors.WrapWithCode(cause, errors.ErrParse,
		fmt.Sprintf("Bad %s value for GPU %s", what, index),
		"The driver may be mid-restart; the host will be retried next cycle")
}
