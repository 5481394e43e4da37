// Package render defines the GPU-facing output contract for synthesized
// geometry: the device handle wcanvas receives from its host, the vertex
// buffer layout of mesh fragments, and their byte encoding for upload.
//
// wcanvas RECEIVES the device from the host application, it does NOT
// create one. The host owns the surface, pipelines and buffers; this
// package only describes how the synthesized meshes map onto them.
package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// The host (window/event-loop layer) implements DeviceHandle and passes it
// down; geometry uploads go through its Device and Queue. DeviceHandle is
// an alias for gpucontext.DeviceProvider so any gpucontext-compatible host
// works unchanged.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle with nil implementations, used in
// tests and headless synthesis where no GPU is available.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo returns unknown adapter info for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}
