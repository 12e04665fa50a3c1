package catalog

// Exercises is the built-in exercise library, grouped by muscle group.
// Declaration order is the stable display order.
var Exercises = []Exercise{

	// Chest
	{ID: "bench_press", Name: "Bench Press", MuscleGroup: Chest, Equipment: "Barbell"},
	{ID: "incline_bench_press", Name: "Incline Bench Press", MuscleGroup: Chest, Equipment: "Barbell"},
	{ID: "decline_bench_press", Name: "Decline Bench Press", MuscleGroup: Chest, Equipment: "Barbell"},
	{ID: "dumbbell_bench_press", Name: "Dumbbell Bench Press", MuscleGroup: Chest, Equipment: "Dumbbells"},
	{ID: "incline_dumbbell_press", Name: "Incline Dumbbell Press", MuscleGroup: Chest, Equipment: "Dumbbells"},
	{ID: "dumbbell_flyes", Name: "Dumbbell Flyes", MuscleGroup: Chest, Equipment: "Dumbbells"},
	{ID: "cable_flyes", Name: "Cable Flyes", MuscleGroup: Chest, Equipment: "Cable"},
	{ID: "pec_deck", Name: "Pec Deck", MuscleGroup: Chest, Equipment: "Machine"},
	{ID: "push_ups", Name: "Push Ups", MuscleGroup: Chest, Equipment: "Bodyweight"},
	{ID: "diamond_push_ups", Name: "Diamond Push Ups", MuscleGroup: Chest, Equipment: "Bodyweight"},
	{ID: "chest_dips", Name: "Chest Dips", MuscleGroup: Chest, Equipment: "Bodyweight"},
	{ID: "machine_chest_press", Name: "Machine Chest Press", MuscleGroup: Chest, Equipment: "Machine"},
	{ID: "smith_machine_bench", Name: "Smith Machine Bench Press", MuscleGroup: Chest, Equipment: "Smith Machine"},

	// Back
	{ID: "deadlift", Name: "Deadlift", MuscleGroup: Back, Equipment: "Barbell"},
	{ID: "pull_ups", Name: "Pull Ups", MuscleGroup: Back, Equipment: "Bodyweight"},
	{ID: "chin_ups", Name: "Chin Ups", MuscleGroup: Back, Equipment: "Bodyweight"},
	{ID: "lat_pulldown", Name: "Lat Pulldown", MuscleGroup: Back, Equipment: "Cable"},
	{ID: "barbell_row", Name: "Barbell Row", MuscleGroup: Back, Equipment: "Barbell"},
	{ID: "dumbbell_row", Name: "Dumbbell Row", MuscleGroup: Back, Equipment: "Dumbbells"},
	{ID: "seated_cable_row", Name: "Seated Cable Row", MuscleGroup: Back, Equipment: "Cable"},
	{ID: "t_bar_row", Name: "T-Bar Row", MuscleGroup: Back, Equipment: "Barbell"},
	{ID: "face_pulls", Name: "Face Pulls", MuscleGroup: Back, Equipment: "Cable"},
	{ID: "straight_arm_pulldown", Name: "Straight Arm Pulldown", MuscleGroup: Back, Equipment: "Cable"},
	{ID: "rack_pulls", Name: "Rack Pulls", MuscleGroup: Back, Equipment: "Barbell"},
	{ID: "machine_row", Name: "Machine Row", MuscleGroup: Back, Equipment: "Machine"},
	{ID: "inverted_row", Name: "Inverted Row", MuscleGroup: Back, Equipment: "Bodyweight"},
	{ID: "back_extension", Name: "Back Extension", MuscleGroup: Back, Equipment: "Machine"},

	// Shoulders
	{ID: "overhead_press", Name: "Overhead Press", MuscleGroup: Shoulders, Equipment: "Barbell"},
	{ID: "dumbbell_shoulder_press", Name: "Dumbbell Shoulder Press", MuscleGroup: Shoulders, Equipment: "Dumbbells"},
	{ID: "arnold_press", Name: "Arnold Press", MuscleGroup: Shoulders, Equipment: "Dumbbells"},
	{ID: "lateral_raises", Name: "Lateral Raises", MuscleGroup: Shoulders, Equipment: "Dumbbells"},
	{ID: "front_raises", Name: "Front Raises", MuscleGroup: Shoulders, Equipment: "Dumbbells"},
	{ID: "rear_delt_flyes", Name: "Rear Delt Flyes", MuscleGroup: Shoulders, Equipment: "Dumbbells"},
	{ID: "cable_lateral_raises", Name: "Cable Lateral Raises", MuscleGroup: Shoulders, Equipment: "Cable"},
	{ID: "upright_rows", Name: "Upright Rows", MuscleGroup: Shoulders, Equipment: "Barbell"},
	{ID: "shrugs", Name: "Shrugs", MuscleGroup: Shoulders, Equipment: "Dumbbells"},
	{ID: "barbell_shrugs", Name: "Barbell Shrugs", MuscleGroup: Shoulders, Equipment: "Barbell"},
	{ID: "machine_shoulder_press", Name: "Machine Shoulder Press", MuscleGroup: Shoulders, Equipment: "Machine"},
	{ID: "pike_push_ups", Name: "Pike Push Ups", MuscleGroup: Shoulders, Equipment: "Bodyweight"},

	// Biceps
	{ID: "barbell_curl", Name: "Barbell Curl", MuscleGroup: Biceps, Equipment: "Barbell"},
	{ID: "dumbbell_curl", Name: "Dumbbell Curl", MuscleGroup: Biceps, Equipment: "Dumbbells"},
	{ID: "hammer_curl", Name: "Hammer Curl", MuscleGroup: Biceps, Equipment: "Dumbbells"},
	{ID: "preacher_curl", Name: "Preacher Curl", MuscleGroup: Biceps, Equipment: "Barbell"},
	{ID: "incline_dumbbell_curl", Name: "Incline Dumbbell Curl", MuscleGroup: Biceps, Equipment: "Dumbbells"},
	{ID: "cable_curl", Name: "Cable Curl", MuscleGroup: Biceps, Equipment: "Cable"},
	{ID: "concentration_curl", Name: "Concentration Curl", MuscleGroup: Biceps, Equipment: "Dumbbells"},
	{ID: "ez_bar_curl", Name: "EZ Bar Curl", MuscleGroup: Biceps, Equipment: "EZ Bar"},
	{ID: "spider_curl", Name: "Spider Curl", MuscleGroup: Biceps, Equipment: "Dumbbells"},
	{ID: "machine_curl", Name: "Machine Curl", MuscleGroup: Biceps, Equipment: "Machine"},

	// Triceps
	{ID: "tricep_pushdown", Name: "Tricep Pushdown", MuscleGroup: Triceps, Equipment: "Cable"},
	{ID: "skull_crushers", Name: "Skull Crushers", MuscleGroup: Triceps, Equipment: "Barbell"},
	{ID: "overhead_tricep_extension", Name: "Overhead Tricep Extension", MuscleGroup: Triceps, Equipment: "Dumbbells"},
	{ID: "dips", Name: "Dips", MuscleGroup: Triceps, Equipment: "Bodyweight"},
	{ID: "close_grip_bench", Name: "Close Grip Bench Press", MuscleGroup: Triceps, Equipment: "Barbell"},
	{ID: "tricep_kickbacks", Name: "Tricep Kickbacks", MuscleGroup: Triceps, Equipment: "Dumbbells"},
	{ID: "rope_pushdown", Name: "Rope Pushdown", MuscleGroup: Triceps, Equipment: "Cable"},
	{ID: "diamond_push_ups_tri", Name: "Diamond Push Ups", MuscleGroup: Triceps, Equipment: "Bodyweight"},
	{ID: "bench_dips", Name: "Bench Dips", MuscleGroup: Triceps, Equipment: "Bodyweight"},
	{ID: "machine_tricep_extension", Name: "Machine Tricep Extension", MuscleGroup: Triceps, Equipment: "Machine"},

	// Forearms
	{ID: "wrist_curls", Name: "Wrist Curls", MuscleGroup: Forearms, Equipment: "Barbell"},
	{ID: "reverse_wrist_curls", Name: "Reverse Wrist Curls", MuscleGroup: Forearms, Equipment: "Barbell"},
	{ID: "farmers_walk", Name: "Farmer's Walk", MuscleGroup: Forearms, Equipment: "Dumbbells"},
	{ID: "plate_pinch", Name: "Plate Pinch", MuscleGroup: Forearms, Equipment: "Plates"},
	{ID: "reverse_curl", Name: "Reverse Curl", MuscleGroup: Forearms, Equipment: "Barbell"},

	// Core
	{ID: "plank", Name: "Plank", MuscleGroup: Core, Equipment: "Bodyweight"},
	{ID: "crunches", Name: "Crunches", MuscleGroup: Core, Equipment: "Bodyweight"},
	{ID: "sit_ups", Name: "Sit Ups", MuscleGroup: Core, Equipment: "Bodyweight"},
	{ID: "leg_raises", Name: "Leg Raises", MuscleGroup: Core, Equipment: "Bodyweight"},
	{ID: "hanging_leg_raises", Name: "Hanging Leg Raises", MuscleGroup: Core, Equipment: "Bodyweight"},
	{ID: "russian_twists", Name: "Russian Twists", MuscleGroup: Core, Equipment: "Bodyweight"},
	{ID: "cable_crunches", Name: "Cable Crunches", MuscleGroup: Core, Equipment: "Cable"},
	{ID: "ab_wheel", Name: "Ab Wheel Rollout", MuscleGroup: Core, Equipment: "Ab Wheel"},
	{ID: "mountain_climbers", Name: "Mountain Climbers", MuscleGroup: Core, Equipment: "Bodyweight"},
	{ID: "dead_bug", Name: "Dead Bug", MuscleGroup: Core, Equipment: "Bodyweight"},
	{ID: "bicycle_crunches", Name: "Bicycle Crunches", MuscleGroup: Core, Equipment: "Bodyweight"},
	{ID: "side_plank", Name: "Side Plank", MuscleGroup: Core, Equipment: "Bodyweight"},
	{ID: "woodchoppers", Name: "Woodchoppers", MuscleGroup: Core, Equipment: "Cable"},

	// Quads
	{ID: "squat", Name: "Squat", MuscleGroup: Quads, Equipment: "Barbell"},
	{ID: "front_squat", Name: "Front Squat", MuscleGroup: Quads, Equipment: "Barbell"},
	{ID: "leg_press", Name: "Leg Press", MuscleGroup: Quads, Equipment: "Machine"},
	{ID: "leg_extension", Name: "Leg Extension", MuscleGroup: Quads, Equipment: "Machine"},
	{ID: "lunges", Name: "Lunges", MuscleGroup: Quads, Equipment: "Bodyweight"},
	{ID: "walking_lunges", Name: "Walking Lunges", MuscleGroup: Quads, Equipment: "Bodyweight"},
	{ID: "dumbbell_lunges", Name: "Dumbbell Lunges", MuscleGroup: Quads, Equipment: "Dumbbells"},
	{ID: "goblet_squat", Name: "Goblet Squat", MuscleGroup: Quads, Equipment: "Dumbbells"},
	{ID: "hack_squat", Name: "Hack Squat", MuscleGroup: Quads, Equipment: "Machine"},
	{ID: "bulgarian_split_squat", Name: "Bulgarian Split Squat", MuscleGroup: Quads, Equipment: "Dumbbells"},
	{ID: "sissy_squat", Name: "Sissy Squat", MuscleGroup: Quads, Equipment: "Bodyweight"},
	{ID: "step_ups", Name: "Step Ups", MuscleGroup: Quads, Equipment: "Bodyweight"},
	{ID: "smith_machine_squat", Name: "Smith Machine Squat", MuscleGroup: Quads, Equipment: "Smith Machine"},

	// Hamstrings
	{ID: "romanian_deadlift", Name: "Romanian Deadlift", MuscleGroup: Hamstrings, Equipment: "Barbell"},
	{ID: "stiff_leg_deadlift", Name: "Stiff Leg Deadlift", MuscleGroup: Hamstrings, Equipment: "Barbell"},
	{ID: "leg_curl", Name: "Leg Curl", MuscleGroup: Hamstrings, Equipment: "Machine"},
	{ID: "seated_leg_curl", Name: "Seated Leg Curl", MuscleGroup: Hamstrings, Equipment: "Machine"},
	{ID: "good_mornings", Name: "Good Mornings", MuscleGroup: Hamstrings, Equipment: "Barbell"},
	{ID: "nordic_curl", Name: "Nordic Curl", MuscleGroup: Hamstrings, Equipment: "Bodyweight"},
	{ID: "dumbbell_rdl", Name: "Dumbbell RDL", MuscleGroup: Hamstrings, Equipment: "Dumbbells"},
	{ID: "single_leg_rdl", Name: "Single Leg RDL", MuscleGroup: Hamstrings, Equipment: "Dumbbells"},

	// Glutes
	{ID: "hip_thrust", Name: "Hip Thrust", MuscleGroup: Glutes, Equipment: "Barbell"},
	{ID: "glute_bridge", Name: "Glute Bridge", MuscleGroup: Glutes, Equipment: "Bodyweight"},
	{ID: "cable_kickbacks", Name: "Cable Kickbacks", MuscleGroup: Glutes, Equipment: "Cable"},
	{ID: "donkey_kicks", Name: "Donkey Kicks", MuscleGroup: Glutes, Equipment: "Bodyweight"},
	{ID: "fire_hydrants", Name: "Fire Hydrants", MuscleGroup: Glutes, Equipment: "Bodyweight"},
	{ID: "sumo_deadlift", Name: "Sumo Deadlift", MuscleGroup: Glutes, Equipment: "Barbell"},
	{ID: "hip_abduction", Name: "Hip Abduction Machine", MuscleGroup: Glutes, Equipment: "Machine"},
	{ID: "banded_walks", Name: "Banded Walks", MuscleGroup: Glutes, Equipment: "Resistance Band"},

	// Calves
	{ID: "standing_calf_raise", Name: "Standing Calf Raise", MuscleGroup: Calves, Equipment: "Machine"},
	{ID: "seated_calf_raise", Name: "Seated Calf Raise", MuscleGroup: Calves, Equipment: "Machine"},
	{ID: "dumbbell_calf_raise", Name: "Dumbbell Calf Raise", MuscleGroup: Calves, Equipment: "Dumbbells"},
	{ID: "leg_press_calf_raise", Name: "Leg Press Calf Raise", MuscleGroup: Calves, Equipment: "Machine"},
	{ID: "single_leg_calf_raise", Name: "Single Leg Calf Raise", MuscleGroup: Calves, Equipment: "Bodyweight"},

	// Full body
	{ID: "clean_and_press", Name: "Clean and Press", MuscleGroup: FullBody, Equipment: "Barbell"},
	{ID: "thrusters", Name: "Thrusters", MuscleGroup: FullBody, Equipment: "Barbell"},
	{ID: "burpees", Name: "Burpees", MuscleGroup: FullBody, Equipment: "Bodyweight"},
	{ID: "kettlebell_swings", Name: "Kettlebell Swings", MuscleGroup: FullBody, Equipment: "Kettlebell"},
	{ID: "turkish_getup", Name: "Turkish Get Up", MuscleGroup: FullBody, Equipment: "Kettlebell"},
	{ID: "man_makers", Name: "Man Makers", MuscleGroup: FullBody, Equipment: "Dumbbells"},
	{ID: "battle_ropes", Name: "Battle Ropes", MuscleGroup: FullBody, Equipment: "Battle Ropes"},
	{ID: "box_jumps", Name: "Box Jumps", MuscleGroup: FullBody, Equipment: "Box"},
	{ID: "sled_push", Name: "Sled Push", MuscleGroup: FullBody, Equipment: "Sled"},

	// Cardio
	{ID: "treadmill", Name: "Treadmill", MuscleGroup: Cardio, Equipment: "Machine"},
	{ID: "elliptical", Name: "Elliptical", MuscleGroup: Cardio, Equipment: "Machine"},
	{ID: "stationary_bike", Name: "Stationary Bike", MuscleGroup: Cardio, Equipment: "Machine"},
	{ID: "rowing_machine", Name: "Rowing Machine", MuscleGroup: Cardio, Equipment: "Machine"},
	{ID: "stair_climber", Name: "Stair Climber", MuscleGroup: Cardio, Equipment: "Machine"},
	{ID: "jump_rope", Name: "Jump Rope", MuscleGroup: Cardio, Equipment: "Jump Rope"},
	{ID: "swimming", Name: "Swimming", MuscleGroup: Cardio, Equipment: "Pool"},
	{ID: "cycling", Name: "Cycling", MuscleGroup: Cardio, Equipment: "Bike"},
	{ID: "sprints", Name: "Sprints", MuscleGroup: Cardio, Equipment: "None"},
}
