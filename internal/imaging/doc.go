// Package imaging supplies decoded frames to the light locator and renders
// diagnostic images of its output.
//
// Frames are read from disk with EXIF orientation applied and normalised to
// 4-channel non-premultiplied RGBA, which is the layout detection.Frame
// expects from camera captures. PNG, JPEG, GIF, BMP, TIFF and WebP files are
// supported.
//
// # Frame Ordering
//
// ListFrames returns capture files in lexicographic order. Capture rigs name
// frames so that this order matches the LED index, e.g. "0001.png",
// "0002.png", and the session driver relies on it.
//
// # Thread Safety
//
// The FrameCache type is safe for concurrent use. Rendering functions are
// stateless and may be called concurrently.
package imaging
