// Package viewer opens an interactive window on a built scene.
//
// The window runs the Rendering stage: every tick applies orbit-control
// input, and every frame rescales the label sprites for the current viewport
// height, projects the scene and draws it. Resizing the window changes the
// camera aspect ratio and the viewport height used for label sizing.
//
// Controls: drag with the left button to orbit, drag with the right button
// to pan, scroll or +/- to zoom, arrow keys to orbit, R to reset the camera,
// L to toggle the legend and Esc or Q to quit.
package viewer
