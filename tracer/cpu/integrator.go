package cpu

import (
	"github.com/euclase/hyperray/scene"
	"github.com/euclase/hyperray/types"
)

// Sky gradient endpoints. Rays that escape the scene pick up a blend of
// these two colors based on their vertical direction component.
var (
	skyBottomColor = types.XYZ(1.0, 1.0, 1.0)
	skyTopColor    = types.XYZ(0.5, 0.7, 1.0)
)

// frameState is the immutable per-invocation snapshot a block request is
// rendered against. Pending scene/camera changes are swapped in between
// frames, never during one.
type frameState struct {
	camera       scene.Camera
	materials    []scene.Material
	hyperSpheres []scene.HyperSphere
	hyperCuboids []scene.HyperCuboid
	hyperPlanes  []scene.HyperPlane
}

// nearestHit scans every primitive linearly and keeps the closest valid
// intersection. No spatial acceleration: cost is O(primitives) per ray.
func (fs *frameState) nearestHit(r ray) hit {
	tMin := fs.camera.MinDistance
	tMax := fs.camera.MaxDistance

	closest := hit{dist: tMax}
	for i := range fs.hyperSpheres {
		if h := intersectHyperSphere(r, &fs.hyperSpheres[i], tMin, tMax); h.ok && h.dist < closest.dist {
			closest = h
		}
	}
	for i := range fs.hyperCuboids {
		if h := intersectHyperCuboid(r, &fs.hyperCuboids[i], tMin, tMax); h.ok && h.dist < closest.dist {
			closest = h
		}
	}
	for i := range fs.hyperPlanes {
		if h := intersectHyperPlane(r, &fs.hyperPlanes[i], tMin, tMax); h.ok && h.dist < closest.dist {
			closest = h
		}
	}
	return closest
}

func skyGradient(direction types.Vec4) types.Vec3 {
	t := direction[1]*0.5 + 0.5
	return skyBottomColor.Mul(1 - t).Add(skyTopColor.Mul(t))
}

// sampleRadiance estimates the radiance arriving along a single primary
// ray by bouncing it through the scene up to the camera bounce count.
// Misses terminate the path with the sky gradient; hits add the surface
// emission, attenuate the throughput by the base color and scatter into
// a biased diffuse direction: normal plus a uniform 4D direction,
// normalized. This sampling scheme is not cosine-weighted.
func (fs *frameState) sampleRadiance(r ray, rng *sampler) types.Vec3 {
	var radiance types.Vec3
	throughput := types.XYZ(1, 1, 1)

	for bounce := uint32(0); bounce < fs.camera.BounceCount; bounce++ {
		h := fs.nearestHit(r)
		if !h.ok {
			radiance = radiance.Add(throughput.MulVec(skyGradient(r.direction)))
			break
		}

		material := &fs.materials[h.material]
		emitted := material.EmissiveColor.Mul(material.EmissionStrength)
		radiance = radiance.Add(throughput.MulVec(emitted))
		throughput = throughput.MulVec(material.BaseColor)

		// Offset the next origin along the normal so the bounce ray
		// cannot immediately re-intersect the surface it left.
		r = ray{
			origin:    h.position.Add(h.normal.Mul(fs.camera.MinDistance)),
			direction: h.normal.Add(rng.direction()).Normalize(),
		}
	}

	return radiance
}

// renderPixel runs the full per-pixel estimator: sample_count radiance
// samples through one seeded generator, averaged channel-wise. The
// result is unclamped radiance; clamping happens when the value is
// converted for the frame buffer so progressive accumulation keeps the
// full dynamic range.
func (fs *frameState) renderPixel(px, py, frameW, frameH, seed uint32) types.Vec3 {
	rng := newSampler(seed + py*frameW + px)

	var accum types.Vec3
	for s := uint32(0); s < fs.camera.SampleCount; s++ {
		r := cameraRay(&fs.camera, px, py, frameW, frameH)
		accum = accum.Add(fs.sampleRadiance(r, &rng))
	}

	return accum.Mul(1 / float32(fs.camera.SampleCount))
}
