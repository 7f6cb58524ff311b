package job

import (
	"fmt"

	"github.com/seedhouse/farmops-api/internal/domain/entity"
)

// Line-item accumulation. These helpers mutate a draft in place and keep the
// net weights consistent with the raw inputs; callers provide the tare lookup.

// AddInbound appends a blank inbound line of the given source type and
// returns a pointer to it.
func AddInbound(d *entity.JobDraft, sourceType string) *entity.InboundLine {
	d.InboundLines = append(d.InboundLines, entity.InboundLine{SourceType: sourceType})
	return &d.InboundLines[len(d.InboundLines)-1]
}

// RemoveInbound deletes an inbound line by index. There is no undo.
func RemoveInbound(d *entity.JobDraft, index int) error {
	if index < 0 || index >= len(d.InboundLines) {
		return fmt.Errorf("inbound line %d out of range", index)
	}
	d.InboundLines = append(d.InboundLines[:index], d.InboundLines[index+1:]...)
	return nil
}

// AddOutput appends a blank output line to a category, assigning
// boxNumber = max(existing box numbers) + 1.
func AddOutput(d *entity.JobDraft, category string) *entity.OutputLine {
	if d.OutputLines == nil {
		d.OutputLines = map[string][]entity.OutputLine{}
	}
	next := 1
	for _, line := range d.OutputLines[category] {
		if line.BoxNumber >= next {
			next = line.BoxNumber + 1
		}
	}
	d.OutputLines[category] = append(d.OutputLines[category], entity.OutputLine{BoxNumber: next})
	lines := d.OutputLines[category]
	return &lines[len(lines)-1]
}

// RemoveOutput deletes an output line by category and index.
func RemoveOutput(d *entity.JobDraft, category string, index int) error {
	lines := d.OutputLines[category]
	if index < 0 || index >= len(lines) {
		return fmt.Errorf("output line %s[%d] out of range", category, index)
	}
	d.OutputLines[category] = append(lines[:index], lines[index+1:]...)
	return nil
}

// AddSourceBin snapshots a storage location onto the draft. The copied fields
// are not re-synced if the location changes afterwards.
func AddSourceBin(d *entity.JobDraft, loc *entity.StorageLocation) {
	d.SourceBins = append(d.SourceBins, entity.SourceBin{
		Location:      loc.Location,
		LotNumbers:    append([]string(nil), loc.LotNumbers...),
		Products:      append([]string(nil), loc.Products...),
		CurrentWeight: loc.CurrentWeight,
	})
}

// SetInboundWeight stores the raw weight input on an inbound line and reruns
// the net computation. Raw and parsed values are both kept so the form field
// does not snap while the user is mid-typing a decimal.
func SetInboundWeight(d *entity.JobDraft, index int, raw string, tares TareLookup) error {
	if index < 0 || index >= len(d.InboundLines) {
		return fmt.Errorf("inbound line %d out of range", index)
	}
	line := &d.InboundLines[index]
	line.GrossInput = raw
	line.GrossWeight = ParseWeight(raw)
	line.NetWeight = NetWeight(line.GrossWeight, line.UsePhysicalBox, line.PhysicalBoxID, tares)
	return nil
}

// SetInboundTare toggles the physical-box correction on an inbound line and
// reruns the net computation.
func SetInboundTare(d *entity.JobDraft, index int, use bool, physicalBoxID string, tares TareLookup) error {
	if index < 0 || index >= len(d.InboundLines) {
		return fmt.Errorf("inbound line %d out of range", index)
	}
	line := &d.InboundLines[index]
	line.UsePhysicalBox = use
	line.PhysicalBoxID = physicalBoxID
	line.NetWeight = NetWeight(line.GrossWeight, use, physicalBoxID, tares)
	return nil
}

// SetOutputWeight stores the raw weight input on an output line and reruns
// the net computation.
func SetOutputWeight(d *entity.JobDraft, category string, index int, raw string, tares TareLookup) error {
	lines := d.OutputLines[category]
	if index < 0 || index >= len(lines) {
		return fmt.Errorf("output line %s[%d] out of range", category, index)
	}
	line := &lines[index]
	line.GrossInput = raw
	line.GrossWeight = ParseWeight(raw)
	line.NetWeight = NetWeight(line.GrossWeight, line.UsePhysicalBox, line.PhysicalBoxID, tares)
	return nil
}

// SetOutputTare toggles the physical-box correction on an output line and
// reruns the net computation.
func SetOutputTare(d *entity.JobDraft, category string, index int, use bool, physicalBoxID string, tares TareLookup) error {
	lines := d.OutputLines[category]
	if index < 0 || index >= len(lines) {
		return fmt.Errorf("output line %s[%d] out of range", category, index)
	}
	line := &lines[index]
	line.UsePhysicalBox = use
	line.PhysicalBoxID = physicalBoxID
	line.NetWeight = NetWeight(line.GrossWeight, use, physicalBoxID, tares)
	return nil
}

// RecomputeNets reparses every raw weight and reruns the net computation on
// all lines. Run after loading or accepting a whole draft, so stored nets can
// never disagree with the raw inputs.
func RecomputeNets(d *entity.JobDraft, tares TareLookup) {
	for i := range d.InboundLines {
		line := &d.InboundLines[i]
		if line.GrossInput != "" {
			line.GrossWeight = ParseWeight(line.GrossInput)
		}
		line.NetWeight = NetWeight(line.GrossWeight, line.UsePhysicalBox, line.PhysicalBoxID, tares)
	}
	for key := range d.OutputLines {
		lines := d.OutputLines[key]
		for i := range lines {
			line := &lines[i]
			if line.GrossInput != "" {
				line.GrossWeight = ParseWeight(line.GrossInput)
			}
			line.NetWeight = NetWeight(line.GrossWeight, line.UsePhysicalBox, line.PhysicalBoxID, tares)
		}
	}
}
