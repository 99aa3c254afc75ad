package opengl

// boidVert maps world coordinates, with y growing downward, to clip space.
const boidVert = `#version 330 core

layout(location = 0) in vec2 pos;
layout(location = 1) in vec4 color;

uniform vec2 world;

out vec4 vcolor;

void main() {
	gl_Position = vec4(2.0 * pos.x / world.x - 1.0, 1.0 - 2.0 * pos.y / world.y, 0.0, 1.0);
	vcolor = color;
}
`

const boidFrag = `#version 330 core

in vec4 vcolor;

out vec4 fcolor;

void main() {
	fcolor = vcolor;
}
`
