//go:build windows

package webgpu

// WGSL compute shaders for the quantization kernels.
// Using string constants instead of embed for simplicity.

// workgroupSize is the default number of threads per workgroup.
const workgroupSize = 256

// fakeQuantizeShader maps each element through quantize -> clamp ->
// dequantize. round_away mirrors the CPU kernel's round half away from zero;
// WGSL's built-in round() rounds half to even.
const fakeQuantizeShader = `
@group(0) @binding(0) var<storage, read> x: array<f32>;
@group(0) @binding(1) var<storage, read_write> result: array<f32>;

struct Params {
    size: u32,
    scale: f32,
    inv_scale: f32,
    zero_point: f32,
    qmin: f32,
    qmax: f32,
}
@group(0) @binding(2) var<uniform> params: Params;

fn round_away(v: f32) -> f32 {
    return sign(v) * floor(abs(v) + 0.5);
}

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        let q = round_away(x[idx] * params.inv_scale + params.zero_point);
        let qc = clamp(q, params.qmin, params.qmax);
        result[idx] = (qc - params.zero_point) * params.scale;
    }
}
`

// quantizeMaskShader emits 1.0 where the quantization point stays inside
// [qmin, qmax] and 0.0 where it saturates.
const quantizeMaskShader = `
@group(0) @binding(0) var<storage, read> x: array<f32>;
@group(0) @binding(1) var<storage, read_write> result: array<f32>;

struct Params {
    size: u32,
    scale: f32,
    inv_scale: f32,
    zero_point: f32,
    qmin: f32,
    qmax: f32,
}
@group(0) @binding(2) var<uniform> params: Params;

fn round_away(v: f32) -> f32 {
    return sign(v) * floor(abs(v) + 0.5);
}

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        let q = round_away(x[idx] * params.inv_scale + params.zero_point);
        result[idx] = select(1.0, 0.0, q < params.qmin || q > params.qmax);
    }
}
`

// mulShader performs element-wise multiplication: result = a * b.
const mulShader = `
@group(0) @binding(0) var<storage, read> a: array<f32>;
@group(0) @binding(1) var<storage, read> b: array<f32>;
@group(0) @binding(2) var<storage, read_write> result: array<f32>;

struct Params {
    size: u32,
}
@group(0) @binding(3) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        result[idx] = a[idx] * b[idx];
    }
}
`
