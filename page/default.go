package page

// Default returns the home page of the practice site with its four
// carousels.
func Default() *Page {
	return New("Summit Orthopedics & Sports Medicine",
		&Section{
			Selector: HeroSelector,
			Heading:  "Welcome",
			Slides: []Slide{
				{ID: "hero-1", Title: "Move Without Pain", Caption: "Board-certified orthopedic care for joints, spine and sports injuries."},
				{ID: "hero-2", Title: "Minimally Invasive Surgery", Caption: "Arthroscopic procedures with faster recovery and smaller incisions."},
				{ID: "hero-3", Title: "Back in the Game", Caption: "Sports medicine programs built around your season."},
			},
		},
		&Section{
			Selector: ClinicSelector,
			Heading:  "Our Clinic",
			HasPrev:  true,
			HasNext:  true,
			Slides: []Slide{
				{ID: "clinic-1", Title: "Reception", Caption: "Same-week appointments and on-site X-ray."},
				{ID: "clinic-2", Title: "Consultation Room", Caption: "Unhurried visits with your surgeon."},
				{ID: "clinic-3", Title: "Imaging Suite", Caption: "Digital X-ray and ultrasound-guided injections."},
				{ID: "clinic-4", Title: "Operating Theatre", Caption: "Laminar-flow theatre for joint replacement."},
				{ID: "clinic-5", Title: "Rehab Gym", Caption: "Physiotherapy under the same roof."},
				{ID: "clinic-6", Title: "Recovery Lounge", Caption: "Day-surgery recovery with family seating."},
			},
		},
		&Section{
			Selector: TestimonialsSelector,
			Heading:  "What Patients Say",
			HasPrev:  true,
			HasNext:  true,
			Slides: []Slide{
				{ID: "review-1", Author: "Maria G.", Caption: "Knee replacement in March, hiking again by July. The team explained every step."},
				{ID: "review-2", Author: "David K.", Caption: "My rotator cuff repair went smoothly and the follow-up physio was excellent."},
				{ID: "review-3", Author: "Priya S.", Caption: "Finally a doctor who listened. My back pain is under control without surgery."},
				{ID: "review-4", Author: "Tom W.", Caption: "ACL reconstruction and a return-to-sport plan that actually worked."},
				{ID: "review-5", Author: "Linda M.", Caption: "Friendly staff, short waits, and a clear recovery plan for my hip."},
			},
		},
		&Section{
			Selector: VerticalSelector,
			Heading:  "Treatments",
			HasPrev:  true,
			HasNext:  true,
			Slides: []Slide{
				{ID: "treat-1", Title: "Joint Replacement", Caption: "Hip, knee and shoulder arthroplasty."},
				{ID: "treat-2", Title: "Spine Care", Caption: "Disc, stenosis and scoliosis management."},
				{ID: "treat-3", Title: "Sports Injuries", Caption: "Ligament, tendon and cartilage repair."},
				{ID: "treat-4", Title: "Fracture Care", Caption: "Casting, fixation and bone-healing follow-up."},
			},
		},
	)
}
