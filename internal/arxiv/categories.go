package arxiv

// Category is one arXiv subject classification offered in the research-area
// editor.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Categories returns the subject classifications the dashboard exposes.
// A curated subset — arXiv has hundreds.
func Categories() []Category {
	return []Category{
		{ID: "cs.AI", Name: "Artificial Intelligence"},
		{ID: "cs.CL", Name: "Computation and Language"},
		{ID: "cs.CR", Name: "Cryptography and Security"},
		{ID: "cs.CV", Name: "Computer Vision and Pattern Recognition"},
		{ID: "cs.DB", Name: "Databases"},
		{ID: "cs.DC", Name: "Distributed, Parallel, and Cluster Computing"},
		{ID: "cs.IR", Name: "Information Retrieval"},
		{ID: "cs.LG", Name: "Machine Learning"},
		{ID: "cs.NE", Name: "Neural and Evolutionary Computing"},
		{ID: "cs.OS", Name: "Operating Systems"},
		{ID: "cs.PL", Name: "Programming Languages"},
		{ID: "cs.RO", Name: "Robotics"},
		{ID: "cs.SE", Name: "Software Engineering"},
		{ID: "eess.SP", Name: "Signal Processing"},
		{ID: "math.OC", Name: "Optimization and Control"},
		{ID: "math.ST", Name: "Statistics Theory"},
		{ID: "q-bio.NC", Name: "Neurons and Cognition"},
		{ID: "stat.ML", Name: "Machine Learning (Statistics)"},
	}
}
