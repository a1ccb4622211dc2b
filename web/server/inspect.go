package server

import (
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	Object       int                    `json:"object"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Inside       bool                   `json:"inside"`
	N1           float64                `json:"n1"`
	N2           float64                `json:"n2"`
	Color        string                 `json:"color"` // shaded pixel color
	Material     map[string]interface{} `json:"material"`
}

// extractMaterialInfo describes a material for the inspector
func extractMaterialInfo(mat material.Material) map[string]interface{} {
	properties := map[string]interface{}{
		"color":           colorHex(mat.Color),
		"ambient":         mat.Ambient,
		"diffuse":         mat.Diffuse,
		"specular":        mat.Specular,
		"shininess":       mat.Shininess,
		"reflective":      mat.Reflective,
		"transparency":    mat.Transparency,
		"refractiveIndex": mat.RefractiveIndex,
	}
	if mat.Pattern != nil {
		properties["pattern"] = mat.Pattern.Kind().String()
	}
	return properties
}

// inspectPixel casts the camera ray through a pixel and describes the
// first surface it hits
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) InspectResponse {
	ray := sceneObj.Camera.RayForPixel(pixelX, pixelY)
	w := sceneObj.World

	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return InspectResponse{Hit: false, Object: -1, Color: colorHex(w.Background)}
	}

	shapes := w.Shapes()
	comps := geometry.PrepareComputations(hit, ray, xs, shapes)
	shape := shapes[hit.Object]

	return InspectResponse{
		Hit:          true,
		Object:       hit.Object,
		GeometryType: shape.Geometry().String(),
		Point:        triple(comps.Point.X, comps.Point.Y, comps.Point.Z),
		Normal:       triple(comps.Normal.X, comps.Normal.Y, comps.Normal.Z),
		Distance:     comps.T,
		Inside:       comps.Inside,
		N1:           comps.N1,
		N2:           comps.N2,
		Color:        colorHex(w.ShadeHit(comps, sceneObj.MaxDepth)),
		Material:     extractMaterialInfo(shape.Material),
	}
}

func triple(x, y, z float64) [3]float64 {
	return [3]float64{x, y, z}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	// Parse pixel coordinates
	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	// Validate pixel coordinates
	if pixelX < 0 || pixelX >= req.Width || pixelY < 0 || pixelY >= req.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, pixelX, pixelY))
}
