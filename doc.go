/*
go-cafvis renders debug overlays for the composite association field (CAF)
head of a pose estimation network.  A CAF carries, for every field cell and
skeleton connection, a confidence, two regression vectors pointing at the
connection's endpoints and two scales.

The root package holds the field tensor types shared by the sub packages.
Rendering is split the same way the post processing code of a model is:

  - visualize contains the CAF visualizer that turns field space arrays into
    image aligned layers for ground truth targets or model predictions
  - render contains the drawing primitives and the GoCV backed painter
  - preprocess contains image resampling helpers
  - pose contains annotations, skeletons and the COCO defaults

See the visualize package for usage.
*/
package cafvis
