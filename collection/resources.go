package collection

import (
	"sync"

	"image-qualifier/resources"
)

// Resources tracks the images and instances created by a single qualification
// run so they can be reaped. It only shrinks through Clear.
type Resources struct {
	sync.Mutex
	images    []resources.CandidateImage
	instances []resources.TestInstance
}

func (r *Resources) AddImage(image resources.CandidateImage) {
	r.Lock()
	defer r.Unlock()

	r.images = append(r.images, image)
}

func (r *Resources) AddInstance(instance resources.TestInstance) {
	r.Lock()
	defer r.Unlock()

	r.instances = append(r.instances, instance)
}

// UpdateInstance replaces the recorded instance with the same ID, keeping its
// position. Unknown instances are added.
func (r *Resources) UpdateInstance(instance resources.TestInstance) {
	r.Lock()
	defer r.Unlock()

	for i := range r.instances {
		if r.instances[i].ID == instance.ID {
			r.instances[i] = instance
			return
		}
	}
	r.instances = append(r.instances, instance)
}

func (r *Resources) Images() []resources.CandidateImage {
	r.Lock()
	defer r.Unlock()

	return append([]resources.CandidateImage(nil), r.images...)
}

func (r *Resources) Instances() []resources.TestInstance {
	r.Lock()
	defer r.Unlock()

	return append([]resources.TestInstance(nil), r.instances...)
}

func (r *Resources) Len() int {
	r.Lock()
	defer r.Unlock()

	return len(r.images) + len(r.instances)
}

func (r *Resources) Clear() {
	r.Lock()
	defer r.Unlock()

	r.images = nil
	r.instances = nil
}
