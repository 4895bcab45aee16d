// Package shape clips, borders and shadows an image drawn onto a
// graphics.Canvas.
//
// A Painter is configured once from a Style and then asked to render each
// frame. The style selects one of three shapes (Normal, Circle, Round), an
// optional border and one of two shadow models:
//
//   - DirectionalShadow fakes a soft edge with linear gradients along the
//     flagged sides and radial gradients in the corners between them.
//   - BlurredShadow draws one blurred, offset silhouette of the shape. It
//     needs a software compositing surface; see graphics.LayerTypeSetter.
//
// Both models reserve room for the shadow by enlarging the content padding
// once, at configuration time. Nothing in this package retains the canvas
// past a RenderFrame call.
package shape
